package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Process exit codes. These are part of the tool's contract with callers
// (cron wrappers, monitoring scripts) and must not change.
const (
	ExitOK             = 0
	ExitNotRoot        = 1
	ExitArgs           = 2
	ExitMissingCommand = 3
	ExitDumpFailed     = 11
	ExitCompressFailed = 12
	ExitChownFailed    = 13
)

// PasswordMask replaces the real password everywhere it would be printed.
const PasswordMask = "********"

// CompressedSuffix is appended by the compressor to the dump file path.
const CompressedSuffix = ".gz"

type Config struct {
	App     AppConfig      `mapstructure:"app"`
	Jobs    []Job          `mapstructure:"jobs"`
	Backup  BackupConfig   `mapstructure:"backup"`
	Uploads []UploadTarget `mapstructure:"upload_targets"`
}

type AppConfig struct {
	Name     string `mapstructure:"name"`
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
}

// Job describes one dumpable database. OutputFile is empty unless the user
// supplied an explicit path on the command line; the argument parser is the
// only writer.
type Job struct {
	ShortFlag  string `mapstructure:"short_flag"`
	LongFlag   string `mapstructure:"long_flag"`
	Name       string `mapstructure:"name"`
	Database   string `mapstructure:"database"`
	Suffix     string `mapstructure:"suffix"`
	OutputFile string `mapstructure:"-"`
}

type BackupConfig struct {
	DumpFolder     string `mapstructure:"dump_folder"`
	DateFormat     string `mapstructure:"date_format"`
	OrganizeByDate bool   `mapstructure:"organize_by_date"`
	DBUser         string `mapstructure:"db_user"`
	DBPassword     string `mapstructure:"db_password"`
	OwnerUser      string `mapstructure:"owner_user"`
	OwnerGroup     string `mapstructure:"owner_group"`
	RequireRoot    bool   `mapstructure:"require_root"`

	// External commands probed by --check, in the order they are reported.
	Commands []string `mapstructure:"commands"`
}

type UploadTarget struct {
	Type    string `mapstructure:"type"`
	Enabled bool   `mapstructure:"enabled"`

	// Google Drive
	CredentialsFile string `mapstructure:"credentials_file"`
	FolderID        string `mapstructure:"folder_id"`

	// AWS S3
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Prefix    string `mapstructure:"prefix"`

	// Telegram
	BotToken   string `mapstructure:"bot_token"`
	ChatID     string `mapstructure:"chat_id"`
	SendFile   bool   `mapstructure:"send_file"`
	NotifyOnly bool   `mapstructure:"notify_only"`
}

// Load builds the effective configuration: built-in defaults, overridden by an
// optional YAML file and MYSQLDUMPGZ_* environment variables. An explicit path
// must exist; with no path, a missing config file just means defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("app.name", "mysqldumpgz")
	v.SetDefault("app.log_level", "warn")
	v.SetDefault("backup.dump_folder", "/var/backups/mysql")
	v.SetDefault("backup.date_format", "2006-01-02")
	v.SetDefault("backup.organize_by_date", true)
	v.SetDefault("backup.db_user", "root")
	v.SetDefault("backup.owner_user", "root")
	v.SetDefault("backup.owner_group", "root")
	v.SetDefault("backup.require_root", true)
	v.SetDefault("backup.commands", []string{"mysqldump", "gzip", "chown"})

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		v.SetConfigName("mysqldumpgz")
		v.SetConfigType("yaml")
		v.AddConfigPath("/etc/mysqldumpgz")
		v.AddConfigPath(".")
		var notFound viper.ConfigFileNotFoundError
		if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v.SetEnvPrefix("MYSQLDUMPGZ")
	// Nested keys hold dots; the env names use underscores instead.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if len(cfg.Jobs) == 0 {
		cfg.Jobs = DefaultJobs()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// DefaultJobs is the stock job table used when the config file defines none.
func DefaultJobs() []Job {
	return []Job{
		{ShortFlag: "-m", LongFlag: "--moodle", Name: "Moodle", Database: "moodle", Suffix: "moodle"},
		{ShortFlag: "-n", LongFlag: "--nextcloud", Name: "Nextcloud", Database: "nextcloud", Suffix: "nextcloud"},
		{ShortFlag: "-w", LongFlag: "--wordpress", Name: "WordPress", Database: "wordpress", Suffix: "wordpress"},
	}
}

func (c *Config) Validate() error {
	if len(c.Jobs) == 0 {
		return fmt.Errorf("at least one job is required")
	}

	for i, job := range c.Jobs {
		if job.ShortFlag == "" || job.LongFlag == "" {
			return fmt.Errorf("job[%d]: short_flag and long_flag are required", i)
		}
		if job.Name == "" {
			return fmt.Errorf("job[%d]: name is required", i)
		}
		if job.Database == "" {
			return fmt.Errorf("job[%d]: database is required", i)
		}
		if job.Suffix == "" {
			return fmt.Errorf("job[%d]: suffix is required", i)
		}
	}

	if c.Backup.DumpFolder == "" {
		return fmt.Errorf("backup.dump_folder is required")
	}
	if c.Backup.DateFormat == "" {
		return fmt.Errorf("backup.date_format is required")
	}
	if c.Backup.DBUser == "" {
		return fmt.Errorf("backup.db_user is required")
	}
	if len(c.Backup.Commands) == 0 {
		return fmt.Errorf("backup.commands is required")
	}

	return nil
}

// JobByFlag matches a command line token against every job's flag pair.
// Repeated selections are not deduplicated here or anywhere else.
func (c *Config) JobByFlag(token string) (*Job, bool) {
	for i := range c.Jobs {
		if token == c.Jobs[i].ShortFlag || token == c.Jobs[i].LongFlag {
			return &c.Jobs[i], true
		}
	}
	return nil, false
}

func (c *Config) GetEnabledUploadTargets() []UploadTarget {
	var enabled []UploadTarget
	for _, target := range c.Uploads {
		if target.Enabled {
			enabled = append(enabled, target)
		}
	}
	return enabled
}
