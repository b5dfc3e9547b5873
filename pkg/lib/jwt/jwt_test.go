package jwt_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"league/pkg/lib/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJWTFromHeader(t *testing.T) {
	cases := []struct {
		header string
		token  string
		err    error
	}{
		{header: "Bearer abc", token: "abc"},
		{header: "bearer abc", token: "abc"},
		{header: "BEARER  abc ", token: "abc"},
		{header: "", err: jwt.ErrNoAccessToken},
		{header: "Bearer ", err: jwt.ErrNoAccessToken},
		{header: "Basic abc", err: jwt.ErrInvalidToken},
		{header: "abc", err: jwt.ErrInvalidToken},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		token, err := jwt.ExtractJWTFromHeader(req)
		if tc.err != nil {
			assert.ErrorIs(t, err, tc.err, tc.header)
			continue
		}
		require.NoError(t, err, tc.header)
		assert.Equal(t, tc.token, token)
	}
}
