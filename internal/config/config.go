// Package config loads ISE connection settings from the environment and
// validates command-line options before any network call is made.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/dm/ise-go/internal/render"
)

// Environment variable names.
const (
	EnvHost       = "ISE_PPAN"
	EnvUsername   = "ISE_REST_USERNAME"
	EnvPassword   = "ISE_REST_PASSWORD"
	EnvCertVerify = "ISE_CERT_VERIFY"
)

// Limits shared with the engine and client.
const (
	MaxWorkers        = 30
	MaxPageSize       = 100
	DefaultExpiration = 3600
)

// Env holds the connection settings for one ISE deployment.
type Env struct {
	Host       string
	Username   string
	Password   string
	CertVerify bool
}

// LoadEnv reads the ISE_* variables. A .env file in the working directory
// is loaded first if present; existing variables win.
func LoadEnv() (*Env, error) {
	_ = godotenv.Load()
	return EnvFrom(os.Getenv)
}

// EnvFrom builds an Env from getenv and validates it.
func EnvFrom(getenv func(string) string) (*Env, error) {
	e := &Env{
		Host:       strings.TrimSpace(getenv(EnvHost)),
		Username:   strings.TrimSpace(getenv(EnvUsername)),
		Password:   getenv(EnvPassword),
		CertVerify: ParseBool(getenv(EnvCertVerify), true),
	}
	if err := e.validate(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Env) validate() error {
	var missing []string
	if e.Host == "" {
		missing = append(missing, EnvHost)
	}
	if e.Username == "" {
		missing = append(missing, EnvUsername)
	}
	if e.Password == "" {
		missing = append(missing, EnvPassword)
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing environment: %s", strings.Join(missing, ", "))
	}
	return nil
}

// BaseURL returns the host as an https URL unless a scheme was given.
func (e *Env) BaseURL() string {
	if strings.Contains(e.Host, "://") {
		return strings.TrimRight(e.Host, "/")
	}
	return "https://" + strings.TrimRight(e.Host, "/")
}

// ParseBool looks only at the first character: t, y or 1 are true; f, n
// or 0 are false. Anything else, including empty, yields def.
func ParseBool(s string, def bool) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	switch s[0] {
	case 't', 'T', 'y', 'Y', '1':
		return true
	case 'f', 'F', 'n', 'N', '0':
		return false
	default:
		return def
	}
}

// Options are the parsed command-line flags shared by both tools.
type Options struct {
	Details    bool
	NoID       bool
	Format     string
	SaveDir    string
	Insecure   bool
	NoCache    bool
	Refresh    bool
	Expiration int
	Hide       string
	Show       string
	Vars       string
	Sort       string
	Verbosity  int
	Timer      bool
	Workers    int
	PageSize   int
	Yes        bool
	LogFormat  string
}

// Validated is Options after parsing and checking.
type Validated struct {
	Options
	Format     render.Format
	Projection render.Projection
	Vars       map[string]string
	TTL        time.Duration
}

// Validate checks flag combinations and parses list-valued flags. It is
// always called before any request is issued.
func (o Options) Validate() (*Validated, error) {
	v := &Validated{Options: o}
	var errs []error

	format := o.Format
	if format == "" {
		format = string(render.DefaultFormat)
	}
	f, err := render.ParseFormat(format)
	if err != nil {
		errs = append(errs, err)
	}
	v.Format = f

	v.Projection = render.Projection{Hide: ParseList(o.Hide), Show: ParseList(o.Show)}
	if err := v.Projection.Validate(); err != nil {
		errs = append(errs, err)
	}

	vars, err := ParseVars(o.Vars)
	if err != nil {
		errs = append(errs, err)
	}
	v.Vars = vars

	if o.Workers < 0 || o.Workers > MaxWorkers {
		errs = append(errs, fmt.Errorf("--workers must be between 1 and %d (0 uses the default)", MaxWorkers))
	}
	if o.PageSize < 0 || o.PageSize > MaxPageSize {
		errs = append(errs, fmt.Errorf("--pagesize must be between 1 and %d (0 uses the default)", MaxPageSize))
	}
	if o.Expiration < 0 {
		errs = append(errs, fmt.Errorf("--expiration must not be negative (0 uses the default of %d seconds)", DefaultExpiration))
	}
	exp := o.Expiration
	if exp == 0 {
		exp = DefaultExpiration
	}
	v.TTL = time.Duration(exp) * time.Second

	switch o.LogFormat {
	case "", "auto", "console", "json":
	default:
		errs = append(errs, fmt.Errorf("--log-format must be auto, console or json, got %q", o.LogFormat))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return v, nil
}

// ParseList splits a comma-separated list, dropping blanks.
func ParseList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParseVars parses "k1=v1,k2=v2". Values may contain '='.
func ParseVars(s string) (map[string]string, error) {
	vars := make(map[string]string)
	for _, pair := range ParseList(s) {
		k, val, ok := strings.Cut(pair, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("--vars: %q is not key=value", pair)
		}
		vars[k] = strings.TrimSpace(val)
	}
	return vars, nil
}
