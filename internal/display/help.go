package display

import (
	"fmt"
	"strings"

	"github.com/JotaJota96/mysqldumpgz/internal/config"
)

// Help renders the usage text. Job flag pairs are padded to the widest pair
// so the descriptions line up.
func Help(jobs []config.Job) string {
	var b strings.Builder

	b.WriteString("Usage: mysqldumpgz [options] <job>... \n\n")
	b.WriteString("Dumps the selected databases, compresses the dumps and assigns ownership.\n\n")
	b.WriteString("Options:\n")
	b.WriteString("  -h, --help       Show this help and exit\n")
	b.WriteString("  -s, --simulate   Print the commands that would run, without executing them\n")
	b.WriteString("  -y, --yes        Do not ask for confirmation\n")
	b.WriteString("      --check      Verify that the required external commands are available\n")
	b.WriteString("      --config     Print the effective configuration and exit\n")
	b.WriteString("  -a, --all        Select every configured job\n\n")
	b.WriteString("Jobs (an optional path after a job flag overrides its output file):\n")

	width := 0
	for _, job := range jobs {
		if l := len(flagPair(job)); l > width {
			width = l
		}
	}

	for _, job := range jobs {
		pair := flagPair(job)
		b.WriteString(fmt.Sprintf("  %s%s   Dump the %s database (%s)\n",
			pair, strings.Repeat(" ", width-len(pair)), job.Name, job.Database))
	}

	return b.String()
}

func flagPair(job config.Job) string {
	return job.ShortFlag + ", " + job.LongFlag + " [file]"
}

// ConfigDump renders every job and global setting. The password is masked.
func ConfigDump(cfg *config.Config) string {
	var b strings.Builder

	b.WriteString("Jobs:\n")
	for _, job := range cfg.Jobs {
		b.WriteString(fmt.Sprintf("  %s, %s: name=%s database=%s suffix=%s",
			job.ShortFlag, job.LongFlag, job.Name, job.Database, job.Suffix))
		if job.OutputFile != "" {
			b.WriteString(" output=" + job.OutputFile)
		}
		b.WriteString("\n")
	}

	password := ""
	if cfg.Backup.DBPassword != "" {
		password = config.PasswordMask
	}

	b.WriteString("Settings:\n")
	b.WriteString(fmt.Sprintf("  dump_folder:      %s\n", cfg.Backup.DumpFolder))
	b.WriteString(fmt.Sprintf("  date_format:      %s\n", cfg.Backup.DateFormat))
	b.WriteString(fmt.Sprintf("  organize_by_date: %t\n", cfg.Backup.OrganizeByDate))
	b.WriteString(fmt.Sprintf("  db_user:          %s\n", cfg.Backup.DBUser))
	b.WriteString(fmt.Sprintf("  db_password:      %s\n", password))
	b.WriteString(fmt.Sprintf("  owner:            %s:%s\n", cfg.Backup.OwnerUser, cfg.Backup.OwnerGroup))
	b.WriteString(fmt.Sprintf("  require_root:     %t\n", cfg.Backup.RequireRoot))
	b.WriteString(fmt.Sprintf("  commands:         %s\n", strings.Join(cfg.Backup.Commands, ", ")))

	for _, target := range cfg.Uploads {
		b.WriteString(fmt.Sprintf("  upload target:    %s (enabled: %t)\n", target.Type, target.Enabled))
	}

	return b.String()
}
