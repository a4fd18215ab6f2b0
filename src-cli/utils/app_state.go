package utils

import (
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// AppState carries everything the commands share: the layered config and
// the natural-language date parser. Built once per run and threaded down.
type AppState struct {
	Config *Config
	When   *when.Parser
}

func NewAppState(configPath string) *AppState {
	as := &AppState{}

	// date parser
	as.When = when.New(nil)
	as.When.Add(en.All...)
	as.When.Add(common.All...)

	// config file + env
	as.Config = NewConfig(configPath)

	return as
}

// ResolveDate turns the optional positional date argument into a
// YYYY-MM-DD string in the configured zone. An empty argument means
// today; otherwise a literal YYYY-MM-DD is taken as-is, and anything
// else goes through the natural-language parser ("tomorrow", "next
// friday", ...).
func (as *AppState) ResolveDate(arg string, now time.Time) (string, bool) {
	loc := as.Config.GetLocation()
	if arg == "" {
		return now.In(loc).Format("2006-01-02"), true
	}
	if parsed, err := time.ParseInLocation("2006-01-02", arg, loc); err == nil {
		return parsed.Format("2006-01-02"), true
	}
	result, err := as.When.Parse(arg, now.In(loc))
	if err != nil || result == nil {
		return "", false
	}
	return result.Time.In(loc).Format("2006-01-02"), true
}
