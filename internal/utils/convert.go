package utils

import (
	"errors"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
)

// ConvertToStringMap flattens typed survey answers into a string map.
// Select prompts answer with survey.OptionAnswer values, confirm prompts
// with booleans.
func ConvertToStringMap(inputs map[string]interface{}) (map[string]string, error) {
	conv := map[string]string{}
	for key, val := range inputs {
		switch value := val.(type) {
		case string:
			conv[key] = value
		case int:
			conv[key] = strconv.Itoa(value)
		case bool:
			conv[key] = strconv.FormatBool(value)
		case survey.OptionAnswer:
			conv[key] = value.Value
		default:
			return conv, errors.New("unknown type found while parsing user inputs")
		}
	}
	return conv, nil
}
