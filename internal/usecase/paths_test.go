package usecase

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/JotaJota96/mysqldumpgz/internal/config"
)

func TestCanCreate(t *testing.T) {
	Convey("Given a temporary directory", t, func() {
		tempDir, err := os.MkdirTemp("", "paths_test")
		So(err, ShouldBeNil)
		defer os.RemoveAll(tempDir)

		Convey("An existing regular file reports Exists", func() {
			path := filepath.Join(tempDir, "taken.sql")
			So(os.WriteFile(path, []byte("x"), 0644), ShouldBeNil)

			So(CanCreate(path), ShouldEqual, CreateExists)
		})

		Convey("An existing directory reports Exists", func() {
			So(CanCreate(tempDir), ShouldEqual, CreateExists)
		})

		Convey("A creatable new path reports OK and leaves no trace", func() {
			path := filepath.Join(tempDir, "new.sql")

			So(CanCreate(path), ShouldEqual, CreateOK)
			_, err := os.Stat(path)
			So(os.IsNotExist(err), ShouldBeTrue)
		})

		Convey("A missing parent directory reports ParentMissing", func() {
			path := filepath.Join(tempDir, "nope", "new.sql")

			So(CanCreate(path), ShouldEqual, CreateParentMissing)
		})
	})
}

func TestSQLPath(t *testing.T) {
	Convey("Given a backup configuration", t, func() {
		backup := config.BackupConfig{
			DumpFolder:     "/var/backups/mysql",
			DateFormat:     "2006-01-02",
			OrganizeByDate: true,
		}
		now := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)

		Convey("Without an override, the dated layout applies", func() {
			job := &config.Job{Suffix: "moodle"}
			path, dir := SQLPath(backup, job, now)

			So(path, ShouldEqual, filepath.Join("/var/backups/mysql", "2024", "03", "2024-03-09_moodle.sql"))
			So(dir, ShouldEqual, filepath.Join("/var/backups/mysql", "2024", "03"))
		})

		Convey("With date organization off, the dump folder is used directly", func() {
			backup.OrganizeByDate = false
			job := &config.Job{Suffix: "moodle"}
			path, dir := SQLPath(backup, job, now)

			So(path, ShouldEqual, filepath.Join("/var/backups/mysql", "2024-03-09_moodle.sql"))

			Convey("And nothing is marked for creation", func() {
				So(dir, ShouldEqual, "")
			})
		})

		Convey("An output override is used verbatim", func() {
			job := &config.Job{Suffix: "moodle", OutputFile: "/tmp/custom.sql"}
			path, dir := SQLPath(backup, job, now)

			So(path, ShouldEqual, "/tmp/custom.sql")
			So(dir, ShouldEqual, "")
		})
	})
}
