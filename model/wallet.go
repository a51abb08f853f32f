package model

// WalletIdentity is stored as one JSON file per wallet name.
type WalletIdentity struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	// Compressed secp256k1 public key, hex.
	PublicKey string `json:"public_key"`
	// Raw 32-byte secret, hex.
	SecretKey string `json:"secret_key"`
}
