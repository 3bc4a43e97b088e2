package config

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/xuning888/safedict/pkg/util"
)

type Properties struct {
	RunID      string   `cfg:"runid"`
	LogLevel   string   `cfg:"loglevel"`
	LogDir     string   `cfg:"logdir"`
	FileLog    bool     `cfg:"filelog"`
	TimeFormat string   `cfg:"timeformat"`
	Data       string   `cfg:"data"`
	Prompt     string   `cfg:"prompt"`
	Preload    []string `cfg:"preload"`

	// config file path
	CfPath string `cfg:"cf,omitempty"`
}

var defaultProperties = Properties{
	LogLevel:   "info",
	LogDir:     ".",
	TimeFormat: "2006-01-02 15:04:05.000",
	Prompt:     "safedict> ",
}

var Current = Default()

func Default() *Properties {
	props := defaultProperties
	return &props
}

func parse(src io.Reader) (*Properties, error) {
	config := Default()

	// read config file
	rawMap := make(map[string]string)
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		pivot := strings.IndexAny(line, " ")
		if pivot > 0 && pivot < len(line)-1 { // separator found
			key := line[0:pivot]
			value := strings.Trim(line[pivot+1:], " ")
			rawMap[strings.ToLower(key)] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// parse format
	t := reflect.TypeOf(config)
	v := reflect.ValueOf(config)
	n := t.Elem().NumField()
	for i := 0; i < n; i++ {
		field := t.Elem().Field(i)
		fieldVal := v.Elem().Field(i)
		key, ok := field.Tag.Lookup("cfg")
		if !ok || strings.TrimLeft(key, " ") == "" {
			key = field.Name
		}
		value, ok := rawMap[strings.ToLower(key)]
		if !ok {
			continue
		}
		// fill config
		switch field.Type.Kind() {
		case reflect.String:
			fieldVal.SetString(value)
		case reflect.Bool:
			fieldVal.SetBool("yes" == value)
		case reflect.Slice:
			if field.Type.Elem().Kind() == reflect.String {
				slice := strings.Split(value, ",")
				for j := range slice {
					slice[j] = strings.TrimSpace(slice[j])
				}
				fieldVal.Set(reflect.ValueOf(slice))
			}
		}
	}
	return config, nil
}

// SetUpConfig loads filename into Current. An empty filename keeps the defaults.
func SetUpConfig(filename string) error {
	props := Default()
	if filename != "" {
		file, err := os.Open(filename)
		if err != nil {
			return err
		}
		defer util.Close(file)
		props, err = parse(file)
		if err != nil {
			return err
		}
		configFilePath, err := filepath.Abs(filename)
		if err == nil {
			props.CfPath = configFilePath
		}
	}
	props.RunID = util.RandStr(40)
	if props.LogDir == "" {
		props.LogDir = "."
	}
	Current = props
	return nil
}
