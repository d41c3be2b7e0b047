package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"go-rowstore/config"
	"go-rowstore/pkg/table"
	"go-rowstore/services"
	"go-rowstore/services/executor"
	"go-rowstore/util/logger"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"
)

const prompt = "db > "

type cli struct {
	PageSize     int    `help:"Page size in bytes." default:"${page_size}"`
	MaxRows      uint32 `help:"Maximum number of rows in the table." default:"${max_rows}"`
	UsernameSize int    `help:"Username field capacity in bytes." default:"${username_size}"`
	EmailSize    int    `help:"Email field capacity in bytes." default:"${email_size}"`
	Strict       bool   `help:"Reject too long fields instead of truncating them."`
	LogLevel     string `help:"Log level." default:"${log_level}" enum:"trace,debug,info,warn,error"`
}

func main() {
	configs := config.New()

	var c cli
	kong.Parse(&c,
		kong.Name("rowstore"),
		kong.Description("In-memory paged row store shell."),
		kong.Vars{
			"page_size":     strconv.Itoa(configs.TableConfig.PageSize),
			"max_rows":      strconv.FormatUint(uint64(configs.TableConfig.MaxRows), 10),
			"username_size": strconv.Itoa(configs.TableConfig.UsernameSize),
			"email_size":    strconv.Itoa(configs.TableConfig.EmailSize),
			"log_level":     configs.LogConfig.Level,
		},
	)
	c.apply(configs)

	if err := logger.SetLevel(configs.LogConfig.Level); err != nil {
		fatal(err)
	}

	t, err := table.New(configs.TableConfig.Options())
	if err != nil {
		fatal(errors.Wrap(err, "error while initializing table"))
	}

	logger.L.WithFields(map[string]interface{}{
		"rows_per_page": t.RowsPerPage(),
		"max_rows":      t.Cap(),
	}).Debug("table created")

	if err := run(os.Stdin, os.Stdout, services.New(t, logger.L)); err != nil {
		fatal(err)
	}
}

func (c *cli) apply(configs *config.AppConfig) {
	configs.TableConfig.PageSize = c.PageSize
	configs.TableConfig.MaxRows = c.MaxRows
	configs.TableConfig.UsernameSize = c.UsernameSize
	configs.TableConfig.EmailSize = c.EmailSize
	configs.TableConfig.Strict = c.Strict
	configs.LogConfig.Level = c.LogLevel
}

// run reads statements from in until EOF or .exit, writing results and
// errors to out. Statement errors do not stop the loop. Lines have no
// length limit.
func run(in io.Reader, out io.Writer, ss *services.Services) error {
	r := bufio.NewReader(in)

	for {
		fmt.Fprint(out, prompt)
		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		} else if err != nil && line == "" {
			fmt.Fprintln(out)
			return nil
		}

		q, err := ss.ParserService.ParseQuery(line)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}

		res, err := ss.ExecutorService.Exec(q)
		if errors.Is(err, executor.ErrExit) {
			return nil
		} else if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}

		if _, err := res.WriteTo(out); err != nil {
			return err
		}
	}
}

func fatal(val interface{}) {
	fmt.Fprintln(os.Stderr, val)
	os.Exit(1)
}
