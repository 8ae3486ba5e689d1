package ports

import "context"

// Setting keys.
const (
	SettingDigitalMenuURI = "digital_menu_uri"
)

// SettingRepository stores small key/value configuration.
type SettingRepository interface {
	// Get returns the value or an ObjectNotFoundError.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
