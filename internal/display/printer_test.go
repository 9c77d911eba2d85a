package display

import (
	"bytes"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/JotaJota96/mysqldumpgz/internal/config"
)

func TestPrinter(t *testing.T) {
	Convey("Given a printer without a terminal attached", t, func() {
		var out, errOut bytes.Buffer
		printer := NewPrinterTo(&out, &errOut, false)

		Convey("Plain, success and warning messages go to the output stream", func() {
			printer.Plainf("plain %d", 1)
			printer.Successf("done")
			printer.Warningf("careful")

			So(out.String(), ShouldEqual, "plain 1\ndone\ncareful\n")
			So(errOut.String(), ShouldEqual, "")
		})

		Convey("Error messages go to the error stream", func() {
			printer.Errorf("boom")

			So(out.String(), ShouldEqual, "")
			So(errOut.String(), ShouldEqual, "boom\n")
		})

		Convey("Command echoes get the literal dollar prefix", func() {
			printer.Commandf("gzip -f %s", "/tmp/a.sql")

			So(out.String(), ShouldEqual, "$ gzip -f /tmp/a.sql\n")
		})

		Convey("No ANSI escapes are emitted", func() {
			printer.Successf("done")
			printer.Errorf("boom")

			So(out.String(), ShouldNotContainSubstring, "\x1b[")
			So(errOut.String(), ShouldNotContainSubstring, "\x1b[")
		})
	})
}

func TestHelp(t *testing.T) {
	Convey("Given the stock job table", t, func() {
		jobs := config.DefaultJobs()
		text := Help(jobs)

		Convey("It lists the fixed options", func() {
			for _, flag := range []string{"-h, --help", "-s, --simulate", "-y, --yes", "--check", "--config", "-a, --all"} {
				So(text, ShouldContainSubstring, flag)
			}
		})

		Convey("It lists one line per job", func() {
			So(text, ShouldContainSubstring, "-m, --moodle [file]")
			So(text, ShouldContainSubstring, "-n, --nextcloud [file]")
			So(text, ShouldContainSubstring, "-w, --wordpress [file]")
		})

		Convey("Job descriptions are aligned to the widest flag pair", func() {
			var columns []int
			for _, line := range strings.Split(text, "\n") {
				idx := strings.Index(line, "Dump the ")
				if idx >= 0 {
					columns = append(columns, idx)
				}
			}
			So(len(columns), ShouldEqual, len(jobs))
			for _, col := range columns {
				So(col, ShouldEqual, columns[0])
			}
		})
	})
}

func TestConfigDump(t *testing.T) {
	Convey("Given a configuration with a password set", t, func() {
		cfg := &config.Config{
			Jobs: config.DefaultJobs(),
			Backup: config.BackupConfig{
				DumpFolder: "/var/backups/mysql",
				DateFormat: "2006-01-02",
				DBUser:     "root",
				DBPassword: "hunter2",
				OwnerUser:  "backup",
				OwnerGroup: "backup",
				Commands:   []string{"mysqldump", "gzip", "chown"},
			},
		}

		text := ConfigDump(cfg)

		Convey("The password never appears", func() {
			So(text, ShouldNotContainSubstring, "hunter2")
			So(text, ShouldContainSubstring, config.PasswordMask)
		})

		Convey("Jobs and globals are listed", func() {
			So(text, ShouldContainSubstring, "-m, --moodle")
			So(text, ShouldContainSubstring, "/var/backups/mysql")
			So(text, ShouldContainSubstring, "backup:backup")
		})

		Convey("An empty password stays empty rather than masked", func() {
			cfg.Backup.DBPassword = ""
			So(ConfigDump(cfg), ShouldNotContainSubstring, config.PasswordMask)
		})
	})
}
