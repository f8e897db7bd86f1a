package utils

import (
	"net/url"

	"github.com/mitchellh/mapstructure"
)

// DecodeQuery preenche out com os parâmetros da query string usando as tags mapstructure.
// Parâmetros ausentes mantêm o valor que out já possuía.
func DecodeQuery(values url.Values, out any) error {
	input := make(map[string]any, len(values))
	for key, vals := range values {
		if len(vals) == 0 {
			continue
		}
		input[key] = vals[len(vals)-1]
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return err
	}

	return decoder.Decode(input)
}
