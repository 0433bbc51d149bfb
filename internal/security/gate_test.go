package security_test

import (
	"testing"

	"producttrial/internal/security"

	"github.com/stretchr/testify/assert"
)

func TestGate_CurrentPrincipalEmail(t *testing.T) {
	g := security.NewGate("admin@admin.com")

	cases := []struct {
		name   string
		cred   *security.Credentials
		email  string
		wantOK bool
	}{
		{"nil credentials", nil, "", false},
		{"not authenticated", &security.Credentials{Principal: "a@x.com"}, "", false},
		{"anonymous placeholder", security.Anonymous(), "", false},
		{"blank principal", &security.Credentials{Authenticated: true}, "", false},
		{"user", security.Authenticated("a@x.com"), "a@x.com", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			email, ok := g.CurrentPrincipalEmail(tc.cred)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.email, email)
		})
	}
}

func TestGate_IsAdmin(t *testing.T) {
	g := security.NewGate("admin@admin.com")

	assert.True(t, g.IsAdmin(security.Authenticated("admin@admin.com")))
	assert.False(t, g.IsAdmin(security.Authenticated("a@x.com")))
	assert.False(t, g.IsAdmin(security.Authenticated("Admin@Admin.com")))
	assert.False(t, g.IsAdmin(security.Anonymous()))
	assert.False(t, g.IsAdmin(nil))
}

func TestGate_ConfiguredAdminEmail(t *testing.T) {
	g := security.NewGate("boss@shop.io")

	assert.True(t, g.IsAdmin(security.Authenticated("boss@shop.io")))
	assert.False(t, g.IsAdmin(security.Authenticated("admin@admin.com")))
	assert.Equal(t, "boss@shop.io", g.AdminEmail())
}
