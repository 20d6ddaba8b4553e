package main

import (
	"flag"
	"fmt"
	"os"

	"newt/internal/arith"
	"newt/internal/log"
	"newt/internal/repl"
	"newt/internal/util"
)

var (
	// Version is the current version of the newt binary loaded from the VERSION file in the root of the project.
	Version   = "dev"
	BuildDate = "unknown"
	Commit    = "unknown"
	help      bool
	version   bool
	// logging
	logLevel string
	logFile  string
	// config vars
	configFile string
	noBigInt   bool
	noPow      bool
)

func init() {
	flag.BoolVar(&help, "help", false, "Display help information and exit")
	flag.BoolVar(&help, "h", false, "Display help information and exit")
	flag.BoolVar(&version, "version", false, "Display version information and exit")
	flag.BoolVar(&version, "v", false, "Display version information and exit")
	// runtime config
	flag.StringVar(&configFile, "config", "", "Load runtime configuration from a TOML file")
	flag.BoolVar(&noBigInt, "no-bigint", false, "Disable the BigInt operator paths")
	flag.BoolVar(&noPow, "no-pow", false, "Disable the exponentiation operator")
	// log config
	flag.StringVar(&logLevel, "log-level", "error", "Log level: debug, info, warn, error")
	flag.StringVar(&logFile, "log-file", "", "Log file path (if not set, logs to stderr)")
}

func main() {

	flag.Parse()

	log.Init(logLevel, logFile)

	if version {
		printVersion()
		return
	}

	if help {
		printHelp()
		return
	}

	config := util.DefaultConfiguration()
	config.Version = Version
	config.BuildDate = BuildDate
	config.Commit = Commit
	config.LogLevel = logLevel
	config.LogFile = logFile

	if configFile != "" {
		if err := util.LoadConfigFile(configFile, &config); err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config file '%s': %v\n", configFile, err)
			os.Exit(1)
		}
	}
	if noBigInt {
		config.EnableBigInt = false
	}
	if noPow {
		config.EnableExponentiation = false
	}

	if flag.NArg() > 0 {
		rt := arith.New(config)
		for _, expr := range flag.Args() {
			fmt.Println(repl.Eval(rt, expr).Inspect())
		}
		return
	}

	repl.Start(config, os.Stdin, os.Stdout)
}

func printVersion() {

	fmt.Printf("newt version 'v%s' %s %s\n", Version, BuildDate, Commit)
}

func printHelp() {
	fmt.Printf(`Usage: newt [options] [expression...]

Options:
  -config <path>     Load runtime configuration from a TOML file.
  -no-bigint         Disable the BigInt operator paths.
  -no-pow            Disable the exponentiation operator.
  -help              Display this help information and exit.
  -version           Display version information and exit.
  -log-level <level> Set the log level: debug, info, warn, error. Default is 'error'.
  -log-file <path>   Specify a log file to write logs. Default is stderr.

Details:
This is the newt arithmetic core, the numeric operator engine of an
embedded ECMAScript runtime. Without arguments it starts a line REPL
over the operator set + - * / %% ** with Number, String and BigInt
operands.

Examples:
  newt -log-level=debug         Start the REPL with debug logging enabled
  newt "1 + 2 * 3"              Evaluate the expression and exit
  newt "2 ** 10" "1n + 1n"      Evaluate several expressions in order

Version Information:
  Version:    %s
  Build Date: %s
  Commit:     %s
`, Version, BuildDate, Commit)
}
