// Package security resolves the request principal and answers the admin question.
// Credentials are always passed in explicitly; nothing here reads ambient state.
package security

// 未認証リクエストに入るプレースホルダ
const AnonymousPrincipal = "anonymousUser"

// Credentials はリクエストごとの認証結果
type Credentials struct {
	Principal     string // email
	Authenticated bool
}

// 未認証
func Anonymous() *Credentials {
	return &Credentials{Principal: AnonymousPrincipal, Authenticated: true}
}

// 認証済み
func Authenticated(email string) *Credentials {
	return &Credentials{Principal: email, Authenticated: true}
}

// Gate は副作用なし
type Gate struct {
	adminEmail string
}

// DI
func NewGate(adminEmail string) *Gate {
	return &Gate{adminEmail: adminEmail}
}

// CurrentPrincipalEmail returns the caller's email, or false when there is no
// authenticated principal (nil credentials, not authenticated, or anonymous).
func (g *Gate) CurrentPrincipalEmail(cred *Credentials) (string, bool) {
	if cred == nil || !cred.Authenticated {
		return "", false
	}
	if cred.Principal == "" || cred.Principal == AnonymousPrincipal {
		return "", false
	}
	return cred.Principal, true
}

// 大文字小文字は区別する
func (g *Gate) IsAdmin(cred *Credentials) bool {
	email, ok := g.CurrentPrincipalEmail(cred)
	if !ok {
		return false
	}
	return email == g.adminEmail
}

func (g *Gate) AdminEmail() string {
	return g.adminEmail
}
