package resume

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/spigell/hh-resume/internal/extract"
)

// Profile holds per-candidate data that is never parsed from text.
type Profile struct {
	Name            string            `mapstructure:"name" json:"name"`
	Address         string            `mapstructure:"address" json:"address"`
	Email           string            `mapstructure:"email" json:"email"`
	TelegramAddress string            `mapstructure:"telegram_address" json:"telegram_address"`
	Education       extract.Education `mapstructure:"education" json:"education"`
}

// DefaultProfileName is used when no profile is selected.
const DefaultProfileName = "default"

// DefaultProfile returns the built-in profile.
func DefaultProfile() Profile {
	return Profile{
		Name:            "Иванов Дмитрий Александрович",
		Address:         "Санкт-Петербург",
		Email:           "dmitry@gmail.com",
		TelegramAddress: "@dmitry_120804",
		Education: extract.Education{
			Institution: "Тульский государственный университет",
			Period:      "2012 - 2016",
			Degree:      "Бакалавр Компьютерных наук",
		},
	}
}

// SelectProfile decodes the named profile from a raw profiles section. Fields
// missing in the configured profile keep their built-in values. An empty name
// selects DefaultProfileName; when that is not configured the built-in profile
// is returned.
func SelectProfile(raw map[string]any, name string) (Profile, error) {
	name = strings.TrimSpace(name)
	explicit := name != ""
	if !explicit {
		name = DefaultProfileName
	}

	profile := DefaultProfile()

	value, ok := raw[name]
	if !ok {
		if explicit && name != DefaultProfileName {
			return profile, fmt.Errorf("profile %q is not configured", name)
		}
		return profile, nil
	}

	cfg := &mapstructure.DecoderConfig{
		Result:           &profile,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return profile, err
	}
	if err := decoder.Decode(value); err != nil {
		return profile, fmt.Errorf("decoding profile %q: %w", name, err)
	}

	return profile, nil
}

func (p Profile) record() *Record {
	return &Record{
		Name:            p.Name,
		Address:         p.Address,
		Email:           p.Email,
		TelegramAddress: p.TelegramAddress,
	}
}
