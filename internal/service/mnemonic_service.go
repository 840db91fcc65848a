package service

import (
	"fmt"
	"strings"

	"github.com/ANAVHEOBA/trustwallet/internal/core/domain"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip39"
)

// mnemonicEntropyBits yields a 12-word BIP-39 phrase.
const mnemonicEntropyBits = 128

// RecoveryMessage is shown alongside a freshly generated phrase.
const RecoveryMessage = "IMPORTANT: Write down these 12 words in order and keep them safe. They are the only way to recover your wallet."

// BIP39Deriver implements ports.MnemonicDeriver using BIP-39 mnemonics
// and a fixed secp256k1 derivation to an Ethereum-style address.
type BIP39Deriver struct{}

// NewBIP39Deriver creates a new BIP39Deriver.
func NewBIP39Deriver() *BIP39Deriver {
	return &BIP39Deriver{}
}

// Generate produces a cryptographically random 12-word phrase and its
// derived address.
func (d *BIP39Deriver) Generate() (string, string, error) {
	entropy, err := bip39.NewEntropy(mnemonicEntropyBits)
	if err != nil {
		return "", "", fmt.Errorf("generating entropy: %w", err)
	}
	phrase, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", "", fmt.Errorf("generating mnemonic: %w", err)
	}
	address, err := d.AddressOf(phrase)
	if err != nil {
		return "", "", err
	}
	return phrase, address, nil
}

// Validate checks word-list membership and checksum. Any malformed
// phrase is rejected outright.
func (d *BIP39Deriver) Validate(phrase string) bool {
	return bip39.IsMnemonicValid(strings.TrimSpace(phrase))
}

// AddressOf derives the wallet address for a phrase: BIP-39 seed with an
// empty passphrase, first 32 bytes as the secp256k1 private scalar, then
// the public-key address, lowercase. Deterministic — the same phrase
// always yields the same address, which the dedup/reuse logic depends on.
func (d *BIP39Deriver) AddressOf(phrase string) (string, error) {
	phrase = strings.TrimSpace(phrase)
	if !bip39.IsMnemonicValid(phrase) {
		return "", fmt.Errorf("invalid mnemonic phrase")
	}

	seed := bip39.NewSeed(phrase, "")
	key, err := ethcrypto.ToECDSA(seed[:32])
	if err != nil {
		return "", fmt.Errorf("deriving key from seed: %w", err)
	}
	addr := ethcrypto.PubkeyToAddress(key.PublicKey)
	return domain.NormalizeAddress(addr.Hex()), nil
}
