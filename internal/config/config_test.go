package config

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoad(t *testing.T) {
	Convey("Given the config loader", t, func() {
		Convey("When no config file exists", func() {
			tempDir, err := os.MkdirTemp("", "config_test")
			So(err, ShouldBeNil)
			defer os.RemoveAll(tempDir)

			cfg, err := Load(filepath.Join(tempDir, "missing.yaml"))

			Convey("An explicit path must exist", func() {
				So(err, ShouldNotBeNil)
				So(cfg, ShouldBeNil)
			})
		})

		Convey("When loading a valid config file", func() {
			tempDir, err := os.MkdirTemp("", "config_test")
			So(err, ShouldBeNil)
			defer os.RemoveAll(tempDir)

			path := filepath.Join(tempDir, "config.yaml")
			content := `
backup:
  dump_folder: /srv/backups
  organize_by_date: false
  db_user: dumper
  db_password: secret
jobs:
  - short_flag: "-m"
    long_flag: "--moodle"
    name: Moodle
    database: moodle
    suffix: moodle
upload_targets:
  - type: s3
    enabled: true
    bucket: backups
  - type: telegram
    enabled: false
`
			So(os.WriteFile(path, []byte(content), 0644), ShouldBeNil)

			cfg, err := Load(path)

			Convey("File values override the defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Backup.DumpFolder, ShouldEqual, "/srv/backups")
				So(cfg.Backup.OrganizeByDate, ShouldBeFalse)
				So(cfg.Backup.DBUser, ShouldEqual, "dumper")
				So(cfg.Backup.DBPassword, ShouldEqual, "secret")
			})

			Convey("Defaults fill what the file omits", func() {
				So(err, ShouldBeNil)
				So(cfg.Backup.DateFormat, ShouldEqual, "2006-01-02")
				So(cfg.Backup.RequireRoot, ShouldBeTrue)
				So(cfg.Backup.Commands, ShouldResemble, []string{"mysqldump", "gzip", "chown"})
			})

			Convey("The job table comes from the file", func() {
				So(err, ShouldBeNil)
				So(len(cfg.Jobs), ShouldEqual, 1)
				So(cfg.Jobs[0].Name, ShouldEqual, "Moodle")
			})

			Convey("Only enabled upload targets are returned", func() {
				So(err, ShouldBeNil)
				enabled := cfg.GetEnabledUploadTargets()
				So(len(enabled), ShouldEqual, 1)
				So(enabled[0].Type, ShouldEqual, "s3")
			})
		})

		Convey("When the file defines no jobs", func() {
			tempDir, err := os.MkdirTemp("", "config_test")
			So(err, ShouldBeNil)
			defer os.RemoveAll(tempDir)

			path := filepath.Join(tempDir, "config.yaml")
			So(os.WriteFile(path, []byte("backup:\n  db_user: root\n"), 0644), ShouldBeNil)

			cfg, err := Load(path)

			Convey("The stock job table applies", func() {
				So(err, ShouldBeNil)
				So(len(cfg.Jobs), ShouldEqual, len(DefaultJobs()))
			})
		})

		Convey("When an environment variable overrides a nested key", func() {
			t.Setenv("MYSQLDUMPGZ_BACKUP_DB_USER", "envuser")

			cfg, err := Load("")

			Convey("The environment value wins over the default", func() {
				So(err, ShouldBeNil)
				So(cfg.Backup.DBUser, ShouldEqual, "envuser")
			})
		})

		Convey("When the file defines an incomplete job", func() {
			tempDir, err := os.MkdirTemp("", "config_test")
			So(err, ShouldBeNil)
			defer os.RemoveAll(tempDir)

			path := filepath.Join(tempDir, "config.yaml")
			content := `
jobs:
  - short_flag: "-m"
    long_flag: "--moodle"
    name: Moodle
    suffix: moodle
`
			So(os.WriteFile(path, []byte(content), 0644), ShouldBeNil)

			_, err = Load(path)

			Convey("Validation rejects it", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "database is required")
			})
		})
	})
}

func TestJobByFlag(t *testing.T) {
	Convey("Given a configuration with the stock jobs", t, func() {
		cfg := &Config{Jobs: DefaultJobs()}

		Convey("Short and long flags match the same job", func() {
			short, okShort := cfg.JobByFlag("-m")
			long, okLong := cfg.JobByFlag("--moodle")

			So(okShort, ShouldBeTrue)
			So(okLong, ShouldBeTrue)
			So(short, ShouldEqual, long)
		})

		Convey("Unknown tokens do not match", func() {
			_, ok := cfg.JobByFlag("--bogus")
			So(ok, ShouldBeFalse)
		})

		Convey("The returned job aliases the table, so overrides stick", func() {
			job, ok := cfg.JobByFlag("-m")
			So(ok, ShouldBeTrue)

			job.OutputFile = "/tmp/out.sql"
			So(cfg.Jobs[0].OutputFile, ShouldEqual, "/tmp/out.sql")
		})
	})
}
