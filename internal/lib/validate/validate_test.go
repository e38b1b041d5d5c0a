package validate

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Category string `validate:"required,category"`
	Date     string `validate:"required,datetime=2006-01-02"`
}

func TestStruct(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		in           sample
		failedFields []string
	}{
		{
			name: "Valid",
			in:   sample{Category: "Sport", Date: "2025-10-12"},
		},
		{
			name:         "All is not storable",
			in:           sample{Category: "All", Date: "2025-10-12"},
			failedFields: []string{"Category"},
		},
		{
			name:         "Unknown category and bad date",
			in:           sample{Category: "Party", Date: "12/10/2025"},
			failedFields: []string{"Category", "Date"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := Struct(tc.in)
			if len(tc.failedFields) == 0 {
				require.NoError(t, err)
				return
			}

			var validateErr validator.ValidationErrors
			require.True(t, errors.As(err, &validateErr))

			var fields []string
			for _, fe := range validateErr {
				fields = append(fields, fe.Field())
			}
			assert.ElementsMatch(t, tc.failedFields, fields)
		})
	}
}
