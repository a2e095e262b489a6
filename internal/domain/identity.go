package domain

import (
	"fmt"
	"time"
)

const (
	CIKLength = 40

	DefaultActivationRetryInterval = 300 * time.Second
)

type Identity struct {
	Vendor string `json:"vendor" yaml:"vendor"`
	Model  string `json:"model"  yaml:"model"`
	Serial string `json:"uuid"   yaml:"uuid"`
}

func (i Identity) Validate() error {
	if i.Vendor == "" {
		return fmt.Errorf("vendor is required")
	}

	if i.Model == "" {
		return fmt.Errorf("model is required")
	}

	if i.Serial == "" {
		return fmt.Errorf("serial is required")
	}

	return nil
}

// ValidCIK reports whether cik has the shape of a platform credential.
// The token is opaque, only its length is checked.
func ValidCIK(cik string) bool {
	return len(cik) == CIKLength
}

// MaskCIK keeps the first 8 characters of a credential for logging.
func MaskCIK(cik string) string {
	if len(cik) <= 8 {
		return cik
	}

	masked := []byte(cik)
	for i := 8; i < len(masked); i++ {
		masked[i] = '*'
	}

	return string(masked)
}

// Settings is the persisted device state.
type Settings struct {
	Identity
	CIK                     string
	ActivationRetryInterval time.Duration
}

type DeviceStatus struct {
	Version   string `json:"version"`
	Vendor    string `json:"vendor"`
	Model     string `json:"model"`
	Serial    string `json:"uuid"`
	Activated bool   `json:"activated"`
	Online    bool   `json:"online"`
}
