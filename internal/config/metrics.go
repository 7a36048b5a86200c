package config

type Metrics struct {
	// Textfile is the path of a prometheus textfile written after each run.
	// Empty disables the export.
	Textfile string `env:"TEXTFILE,expand"`
}
