package standard

import (
	"fmt"
	"os"

	"github.com/go-sql-driver/mysql"
	"gopkg.in/yaml.v3"
)

// Config describes a MySQL server and the pool limits to use with it. The
// zero value connects to 127.0.0.1:3306 with the database/sql pool
// defaults.
type Config struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`

	// Params adds driver parameters to the DSN, for example charset or
	// collation.
	Params map[string]string `yaml:"params"`

	// Pool limits. Zero keeps the database/sql default. Lifetimes are in
	// seconds.
	MaxOpenConns    int `yaml:"max_open_conns"`
	MaxIdleConns    int `yaml:"max_idle_conns"`
	ConnMaxLifetime int `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime int `yaml:"conn_max_idle_time"`
}

// LoadConfig reads a Config from a YAML file:
//
//	host: db.internal
//	port: 3306
//	username: app
//	password: secret
//	database: app
//	max_open_conns: 50
//	max_idle_conns: 10
func LoadConfig(path string) (config Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	err = yaml.Unmarshal(data, &config)
	return
}

// DSN assembles the go-sql-driver/mysql data source name for the config.
// ParseTime is always enabled so timestamp columns scan into time.Time.
func (c Config) DSN() string {
	host := c.Host
	if host == "" {
		host = "127.0.0.1"
	}
	port := c.Port
	if port == 0 {
		port = 3306
	}
	config := mysql.NewConfig()
	config.Net = "tcp"
	config.Addr = fmt.Sprintf("%s:%d", host, port)
	config.User = c.Username
	config.Passwd = c.Password
	config.DBName = c.Database
	config.ParseTime = true
	if len(c.Params) > 0 {
		config.Params = c.Params
	}
	return config.FormatDSN()
}
