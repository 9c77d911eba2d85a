package usecase

import (
	"os"
	"path/filepath"
	"time"

	"github.com/JotaJota96/mysqldumpgz/internal/config"
)

// CreateStatus classifies whether a new file could be created at a path.
type CreateStatus int

const (
	CreateOK CreateStatus = iota
	CreateExists
	CreateParentMissing
)

// CanCreate checks a path without touching it. An existing file or directory
// at the path counts as Exists; a missing parent directory as ParentMissing.
func CanCreate(path string) CreateStatus {
	if _, err := os.Stat(path); err == nil {
		return CreateExists
	}

	parent, err := os.Stat(filepath.Dir(path))
	if err != nil || !parent.IsDir() {
		return CreateParentMissing
	}

	return CreateOK
}

// SQLPath resolves where a job's dump lands. An explicit output override is
// used verbatim. Otherwise the name is <date>_<suffix>.sql under the dump
// folder, nested in <year>/<month> when date organization is on. The second
// return value is the dated subfolder to create before dumping; it is ""
// whenever nothing may be created, leaving a missing dump folder to the
// creatability precondition instead.
func SQLPath(backup config.BackupConfig, job *config.Job, now time.Time) (string, string) {
	if job.OutputFile != "" {
		return job.OutputFile, ""
	}

	name := now.Format(backup.DateFormat) + "_" + job.Suffix + ".sql"

	if backup.OrganizeByDate {
		dir := filepath.Join(backup.DumpFolder, now.Format("2006"), now.Format("01"))
		return filepath.Join(dir, name), dir
	}

	return filepath.Join(backup.DumpFolder, name), ""
}
