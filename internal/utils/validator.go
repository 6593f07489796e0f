package utils

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/AlecAivazis/survey/v2"
)

// validatorFactory, name abbreviated so that
// the global implementation can be called 'ValidatorFactory'
type vFactory struct{}

var ValidatorFactory = new(vFactory)

func (*vFactory) NewFromRegex(re, message string) survey.Validator {
	regex := regexp.MustCompile(re)
	return func(v interface{}) error {
		k := reflect.ValueOf(v).Kind()
		if k != reflect.String {
			return fmt.Errorf("was expecting a string, got %s", k.String())
		}
		val := v.(string)
		if !regex.MatchString(val) {
			return fmt.Errorf("%s", message)
		}
		return nil
	}
}
