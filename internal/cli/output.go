package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/veldtlabs/dburl/types"
)

// passwordMask replaces passwords in output, same convention as
// Config.String
const passwordMask = "xxxxx"

// maskPassword hides the password unless the caller asked for it
func maskPassword(config types.Config, show bool) types.Config {
	if show || config.Password == "" {
		return config
	}
	config.Password = passwordMask
	return config
}

// configView is the serializable shape of a resolved config
type configView struct {
	Engine           string            `json:"engine" yaml:"engine"`
	Scheme           string            `json:"scheme,omitempty" yaml:"scheme,omitempty"`
	Host             string            `json:"host,omitempty" yaml:"host,omitempty"`
	Port             int               `json:"port,omitempty" yaml:"port,omitempty"`
	Database         string            `json:"database,omitempty" yaml:"database,omitempty"`
	User             string            `json:"user,omitempty" yaml:"user,omitempty"`
	Password         string            `json:"password,omitempty" yaml:"password,omitempty"`
	Options          map[string]string `json:"options,omitempty" yaml:"options,omitempty"`
	ConnMaxAge       string            `json:"conn_max_age,omitempty" yaml:"conn_max_age,omitempty"`
	ConnHealthChecks bool              `json:"conn_health_checks,omitempty" yaml:"conn_health_checks,omitempty"`
	SSLRequire       bool              `json:"ssl_require,omitempty" yaml:"ssl_require,omitempty"`
	URL              string            `json:"url" yaml:"url"`
}

func newConfigView(config types.Config, show bool) configView {
	masked := maskPassword(config, show)

	view := configView{
		Engine:           masked.Engine.String(),
		Scheme:           masked.Scheme,
		Host:             masked.Host,
		Port:             masked.Port,
		Database:         masked.Database,
		User:             masked.User,
		Password:         masked.Password,
		Options:          masked.Options,
		ConnHealthChecks: masked.ConnHealthChecks,
		SSLRequire:       masked.SSLRequire,
		URL:              masked.URL(),
	}
	if masked.ConnMaxAge > 0 {
		view.ConnMaxAge = masked.ConnMaxAge.String()
	}
	return view
}

// printConfigText writes the aligned key/value form of a config
func printConfigText(w io.Writer, view configView) {
	write := func(key, value string) {
		if value != "" {
			fmt.Fprintf(w, "%-20s %s\n", key+":", value)
		}
	}

	write("engine", view.Engine)
	write("scheme", view.Scheme)
	write("host", view.Host)
	if view.Port > 0 {
		write("port", fmt.Sprintf("%d", view.Port))
	}
	write("database", view.Database)
	write("user", view.User)
	write("password", view.Password)

	if len(view.Options) > 0 {
		keys := make([]string, 0, len(view.Options))
		for k := range view.Options {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, k+"="+view.Options[k])
		}
		write("options", strings.Join(pairs, " "))
	}

	write("conn_max_age", view.ConnMaxAge)
	if view.ConnHealthChecks {
		write("conn_health_checks", "true")
	}
	if view.SSLRequire {
		write("ssl_require", "true")
	}
	write("url", view.URL)
}

// writeOutput renders v as json or yaml per the --output flag, or calls
// the text formatter
func writeOutput(w io.Writer, v any, text func(io.Writer)) error {
	switch outputFormat {
	case "json":
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case "yaml":
		out, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	case "text", "":
		text(w)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", outputFormat)
	}
}
