package modconfig

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
)

// CorrectedMessage is logged once whenever Verify repaired the config.
const CorrectedMessage = "At least one config value was out of range and was reset."

// Host is what Verify reports to: the mod logger and its config persistence.
type Host interface {
	DebugLog(msg string)
	WriteConfig(v any) error
}

var (
	validate = validator.New() //nolint:gochecknoglobals

	// resetFields are set to their minimum on any violation instead of the nearest bound.
	resetFields = map[string]bool{ //nolint:gochecknoglobals
		"TapperQualityOptions": true,
	}

	correctionsTotal = promauto.NewCounter(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "forage_config_corrections_total",
		Help: "Number of times an out of range config was repaired and written back.",
	})
)

// Verify clamps every out of range value of config. If anything was changed it
// logs CorrectedMessage and writes the config back, once per call no matter how
// many fields were repaired. It reports whether a correction happened.
func Verify(config *Config, host Host) bool {
	if config == nil {
		return false
	}

	invalidConfig := false

	if err := validate.Struct(config); err != nil {
		var fieldErrors validator.ValidationErrors
		if !errors.As(err, &fieldErrors) {
			log.Error().Err(err).Msg("config could not be checked")

			return false
		}

		for _, fe := range fieldErrors {
			correct(config, fe)
		}

		invalidConfig = true
	}

	if invalidConfig {
		correctionsTotal.Inc()
		host.DebugLog(CorrectedMessage)

		if err := host.WriteConfig(config); err != nil {
			log.Error().Err(err).Msg("failed to write corrected config")
		}
	}

	return invalidConfig
}

// correct moves the failed field to the bound of the rule it broke. Fields in
// resetFields go to the bound of their min rule instead.
func correct(config *Config, fe validator.FieldError) {
	name := fe.StructField()

	field := reflect.ValueOf(config).Elem().FieldByName(name)
	if !field.IsValid() || !field.CanSet() {
		return
	}

	param := fe.Param()
	if resetFields[name] {
		param = ruleParam(name, "min")
	}

	bound, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		log.Error().Err(err).Str("field", name).Msg("config field has no numeric bound")

		return
	}

	field.SetInt(bound)
}

// ruleParam returns the parameter of rule in the validate tag of a Config field.
func ruleParam(field, rule string) string {
	sf, ok := reflect.TypeOf(Config{}).FieldByName(field)
	if !ok {
		return ""
	}

	for _, part := range strings.Split(sf.Tag.Get("validate"), ",") {
		if param, found := strings.CutPrefix(part, rule+"="); found {
			return param
		}
	}

	return ""
}
