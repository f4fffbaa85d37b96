package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRepository(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantOwner string
		wantName  string
		wantErr   bool
	}{
		{name: "valid", input: "acme/widgets", wantOwner: "acme", wantName: "widgets"},
		{name: "dots and dashes", input: "my-org/repo.go", wantOwner: "my-org", wantName: "repo.go"},
		{name: "no separator", input: "widgets", wantErr: true},
		{name: "empty owner", input: "/widgets", wantErr: true},
		{name: "empty name", input: "acme/", wantErr: true},
		{name: "extra segment", input: "acme/widgets/extra", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := ParseRepository(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedRepositoryReference)
				assert.Equal(t, RepositoryReference{}, ref)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantOwner, ref.Owner)
			assert.Equal(t, tt.wantName, ref.Name)
			assert.Equal(t, tt.input, ref.String())
		})
	}
}
