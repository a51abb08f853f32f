package utils

import (
	"crypto/sha256"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Hash message using SHA256
func SHA256(msg []byte) []byte {
	digest := sha256.Sum256(msg)
	return digest[:]
}

// GenerateKeyPair generates a new secp256k1 key pair
func GenerateKeyPair() (*secp256k1.PrivateKey, *secp256k1.PublicKey, error) {
	sk, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, nil, err
	}
	return sk, sk.PubKey(), nil
}

// GenerateAddress derives the ledger address of a public key: the hex SHA256
// of its uncompressed serialization.
func GenerateAddress(pk *secp256k1.PublicKey) string {
	return BytesToHex(SHA256(pk.SerializeUncompressed()))
}

// PublicKeyToHex public key to compressed hex
func PublicKeyToHex(pk *secp256k1.PublicKey) string {
	return BytesToHex(pk.SerializeCompressed())
}

// PrivateKeyToHex private key to hex
func PrivateKeyToHex(sk *secp256k1.PrivateKey) string {
	return BytesToHex(sk.Serialize())
}

// HexToPrivateKey hex to private key
func HexToPrivateKey(s string) (*secp256k1.PrivateKey, error) {
	b, err := HexToBytes(s)
	if err != nil {
		return nil, err
	}
	if len(b) != secp256k1.PrivKeyBytesLen {
		return nil, fmt.Errorf("secret key must be %d bytes, got %d", secp256k1.PrivKeyBytesLen, len(b))
	}
	return secp256k1.PrivKeyFromBytes(b), nil
}
