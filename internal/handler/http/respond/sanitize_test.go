package respond

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "dsn password masked",
			err:  errors.New(`connect "postgres://app:hunter2@db:5432/board"`),
			want: `connect "postgres://app:****@db:5432/board"`,
		},
		{
			name: "bearer token masked",
			err:  errors.New("reject header Bearer eyJhbGciOiJIUzI1NiJ9.abc.def"),
			want: "reject header Bearer ****",
		},
		{
			name: "plain error untouched",
			err:  errors.New("no rows in result set"),
			want: "no rows in result set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeError(tt.err))
		})
	}
}

func TestSanitizeErrorNil(t *testing.T) {
	assert.Empty(t, SanitizeError(nil))
}
