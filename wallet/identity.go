package wallet

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Luismorlan/ledger_in_go/model"
	"github.com/Luismorlan/ledger_in_go/utils"
)

// Generate creates a new identity with a fresh secp256k1 key pair.
func Generate(name string) (model.WalletIdentity, error) {
	sk, pk, err := utils.GenerateKeyPair()
	if err != nil {
		return model.WalletIdentity{}, fmt.Errorf("%w: %w", model.ErrKeypairGeneration, err)
	}
	return model.WalletIdentity{
		Name:      name,
		Address:   utils.GenerateAddress(pk),
		PublicKey: utils.PublicKeyToHex(pk),
		SecretKey: utils.PrivateKeyToHex(sk),
	}, nil
}

// Registry stores one identity file per wallet name in a directory.
type Registry struct {
	dir string
}

func NewRegistry(dir string) *Registry {
	return &Registry{dir: dir}
}

func (r *Registry) path(name string) string {
	return filepath.Join(r.dir, name+".json")
}

// A wallet name must map to a file directly inside the registry directory.
func isValidName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}

func (r *Registry) Exists(name string) bool {
	return isValidName(name) && utils.FileExists(r.path(name))
}

func (r *Registry) Save(identity model.WalletIdentity) error {
	if !isValidName(identity.Name) {
		return fmt.Errorf("invalid wallet name %q", identity.Name)
	}
	return utils.WriteJSONFile(r.path(identity.Name), identity, 0600)
}

func (r *Registry) Load(name string) (model.WalletIdentity, error) {
	var identity model.WalletIdentity
	if !isValidName(name) {
		return identity, fmt.Errorf("invalid wallet name %q", name)
	}
	err := utils.ReadJSONFile(r.path(name), &identity)
	return identity, err
}

// Resolve returns the address of the wallet called input. Anything that is
// not a readable wallet is taken as a literal address.
func (r *Registry) Resolve(input string) string {
	identity, err := r.Load(input)
	if err != nil || identity.Address == "" {
		return input
	}
	return identity.Address
}
