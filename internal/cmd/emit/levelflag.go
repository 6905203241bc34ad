package emit

import (
	"strings"

	"github.com/schmitthub/sevlog/pkg/logger"
	"github.com/spf13/pflag"
)

// levelValue is a pflag.Value accepting a severity label.
type levelValue struct {
	level *logger.Level
}

var _ pflag.Value = (*levelValue)(nil)

func newLevelValue(def logger.Level, p *logger.Level) *levelValue {
	*p = def
	return &levelValue{level: p}
}

func (v *levelValue) String() string {
	if v.level == nil {
		return ""
	}
	return v.level.String()
}

func (v *levelValue) Set(s string) error {
	level, err := logger.ParseLevel(s)
	if err != nil {
		return err
	}
	*v.level = level
	return nil
}

func (v *levelValue) Type() string { return "level" }

// levelNames is used in flag help.
func levelNames() string {
	names := make([]string, 0, len(logger.Levels()))
	for _, level := range logger.Levels() {
		names = append(names, level.String())
	}
	return strings.Join(names, "|")
}
