package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/calcconstru/calcconstru/internal/config"
	"github.com/calcconstru/calcconstru/internal/engine"
	"github.com/calcconstru/calcconstru/internal/logging"
	"github.com/calcconstru/calcconstru/internal/project"
	"github.com/calcconstru/calcconstru/pkg/constants"
	"github.com/calcconstru/calcconstru/pkg/output"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// loadProject reads a project definition from a YAML or JSON file. With no
// path it returns the default starter project.
func loadProject(path string) (project.Project, error) {
	if path == "" {
		return project.NewProject(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return project.Project{}, fmt.Errorf("failed to read project file %s: %v", path, err)
	}

	var p project.Project
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &p)
	default:
		err = yaml.Unmarshal(data, &p)
	}
	if err != nil {
		return project.Project{}, fmt.Errorf("failed to parse project file %s: %v", path, err)
	}

	p.Normalize()
	return p, nil
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	projectFile := flag.String("project", "", "path to a project definition (YAML or JSON); omit for the starter project")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	// The CLI works without a config file; an explicit -config that fails to
	// load is still fatal.
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		if *configLocation != constants.DefaultConfigFile {
			fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
			return
		}
		conf = config.Default()
	}

	logger, err := logging.NewLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if outputFormat != constants.OutputFormatPretty && outputFormat != constants.OutputFormatCSV {
		logger.Fatal("invalid output format: "+outputFormat,
			zap.String("op", "main"),
		)
	}

	p, err := loadProject(*projectFile)
	if err != nil {
		logger.Fatal("failed to load project",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Validate the project and display any warnings.
	warnings := p.Validate()
	for _, warning := range warnings {
		logger.Warn("Project warning: "+warning,
			zap.String("op", "main"),
		)
	}

	result := engine.Compute(p)

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(p, result)
	case constants.OutputFormatCSV:
		output.CsvFormat(result)
	}
}
