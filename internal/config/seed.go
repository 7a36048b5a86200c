package config

type Seed struct {
	// Enabled disables the whole seed pass when false. The command still
	// reports its summary line with a zero count.
	Enabled bool `env:"ENABLED,expand" envDefault:"true"`
}
