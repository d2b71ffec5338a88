package validation

import (
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"
)

func TestBase64(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		wantErr bool
	}{
		{name: "valid base64", value: "SGVsbG8gV29ybGQ=", wantErr: false},
		{name: "valid base64 without padding content", value: "YWJj", wantErr: false},
		{name: "empty string is skipped", value: "", wantErr: false},
		{name: "invalid characters", value: "not base64!!!", wantErr: true},
		{name: "truncated padding", value: "SGVsbG8gV29ybGQ", wantErr: true},
		{name: "non-string value", value: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Validate(tt.value, Base64)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
