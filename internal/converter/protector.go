package converter

import (
	"errors"
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

const keyLength = 256

// Protector encrypts produced PDFs with AES-256.
type Protector struct{}

func NewProtector() *Protector {
	return &Protector{}
}

// Protect replaces the PDF at path with a copy that requires password to open.
func (p *Protector) Protect(path, password string) error {
	tmp := path + ".protected"

	conf := model.NewAESConfiguration(password, password, keyLength)
	if err := api.EncryptFile(path, tmp, conf); err != nil {
		return errors.Join(fmt.Errorf("failed to encrypt %q: %w", path, err), removeIfExists(tmp))
	}

	if err := os.Rename(tmp, path); err != nil {
		return errors.Join(fmt.Errorf("failed to replace %q: %w", path, err), removeIfExists(tmp))
	}

	return nil
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
