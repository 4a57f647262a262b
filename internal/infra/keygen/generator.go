// Package keygen derives activation keys from device identities.
package keygen

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base32"
	"strings"

	"activator/config"
	"activator/internal/domain/entity"
	"activator/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	groupCount = 5
	groupSize  = 5
)

// variant is the key format of one application.
type variant struct {
	tag    string // Config key of the secret.
	prefix string
}

var variants = map[entity.AppName]variant{
	entity.AppWABomb:     {tag: "wab", prefix: "WAB"},
	entity.AppEmailStorm: {tag: "ems", prefix: "EMS"},
	entity.AppCubiView:   {tag: "cbv", prefix: "CBV"},
}

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

type hmacGenerator struct {
	secrets map[entity.AppName][]byte
}

// NewGenerator builds the per-application generators from license.keySecrets.
// Applications without a configured secret fail at generation time, not at startup.
func NewGenerator(cfg *config.Config) service.KeyGenerator {
	secrets := make(map[entity.AppName][]byte, len(variants))
	if cfg != nil && cfg.License != nil {
		for app, v := range variants {
			if secret := cfg.License.KeySecrets[v.tag]; secret != "" {
				secrets[app] = []byte(secret)
			}
		}
	}

	return &hmacGenerator{secrets: secrets}
}

// Generate returns PREFIX-XXXXX-XXXXX-XXXXX-XXXXX-XXXXX, deterministic per (identity, app).
func (g *hmacGenerator) Generate(app entity.AppName, identity entity.Identity) (string, error) {
	v, ok := variants[app]
	if !ok {
		return "", errors.Errorf("no key generator for app %q", app)
	}

	secret, ok := g.secrets[app]
	if !ok {
		return "", errors.Errorf("no key secret configured for app %q", app)
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(app))
	mac.Write([]byte{0})
	mac.Write([]byte(identity.Key()))
	digest := encoding.EncodeToString(mac.Sum(nil))

	groups := make([]string, 0, groupCount+1)
	groups = append(groups, v.prefix)
	for i := range groupCount {
		groups = append(groups, digest[i*groupSize:(i+1)*groupSize])
	}

	return strings.Join(groups, "-"), nil
}
