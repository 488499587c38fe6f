package mysql

import (
	"fmt"
	"net"
	"strconv"

	"github.com/go-sql-driver/mysql"

	"github.com/veldtlabs/dburl/base"
	"github.com/veldtlabs/dburl/types"
)

// DefaultPort is the conventional MySQL port
const DefaultPort = 3306

// MySQLURIParser implements URIParser for MySQL databases
type MySQLURIParser struct {
	base.Parser
}

// NewMySQLURIParser creates a new MySQL URI parser
func NewMySQLURIParser() *MySQLURIParser {
	return &MySQLURIParser{
		Parser: base.NewParser(types.EngineMySQL, []string{"mysql", "mysql2"}, DefaultPort),
	}
}

// FormatDSN renders the go-sql-driver DSN form
// (user:pass@tcp(host:port)/dbname?param=value). The driver's own
// mysql.Config does the rendering so quoting stays correct
func (p *MySQLURIParser) FormatDSN(config types.Config) (string, error) {
	if config.Engine != types.EngineMySQL {
		return "", fmt.Errorf("config engine %s is not mysql", config.Engine)
	}

	cfg := mysql.NewConfig()
	cfg.User = config.User
	cfg.Passwd = config.Password
	cfg.DBName = config.Database

	if config.Host != "" {
		port := config.Port
		if port == 0 {
			port = DefaultPort
		}
		cfg.Net = "tcp"
		cfg.Addr = net.JoinHostPort(config.Host, strconv.Itoa(port))
	}

	params := make(map[string]string, len(config.Options)+3)
	for k, v := range config.Options {
		params[k] = v
	}
	if _, ok := params["charset"]; !ok {
		params["charset"] = "utf8mb4"
	}
	if _, ok := params["parseTime"]; !ok {
		params["parseTime"] = "true"
	}
	if config.SSLRequire {
		params["tls"] = "true"
	}
	cfg.Params = params

	return cfg.FormatDSN(), nil
}
