package dto

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

func TestAddressValidation(t *testing.T) {
	cases := []struct {
		name  string
		asset string
		valid bool
	}{
		{"lowercase hex", "0x00000000000000000000000000000000000000e0", true},
		{"checksummed", "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", true},
		{"bad checksum", "0x5aaeb6053F3E94C9b9A09f33669435E7Ef1BeAed", false},
		{"missing prefix accepted", "00000000000000000000000000000000000000e0", true},
		{"too short", "0xe0", false},
		{"not hex", "0xzz000000000000000000000000000000000000e0", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := DepositRequest{Asset: tc.asset, Amount: 1}
			err := binding.Validator.ValidateStruct(&req)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestZeroAmountPassesBinding(t *testing.T) {
	// Zero-amount operations are legal ledger calls, so amount has no
	// required/gt tag.
	req := DepositRequest{Asset: "0x00000000000000000000000000000000000000e0", Amount: 0}
	assert.NoError(t, binding.Validator.ValidateStruct(&req))
}
