package config

// AnalyzerConfig represents the configuration for the event analyzer
type AnalyzerConfig struct {
	DetectThreshold float64
	CreateThreshold float64
	DateWeight      float64
	TimeWeight      float64
	KeywordWeight   float64
	LocationWeight  float64
	MaxSnippetSize  int
}

// GmailConfig represents the configuration for the Gmail message source
type GmailConfig struct {
	CredentialsFile string
	TokenFile       string
	Query           string
}

// CalendarConfig represents the configuration for the calendar writer
type CalendarConfig struct {
	Type       string
	CalendarID string
}

// ServerConfig represents the configuration for the dashboard HTTP server
type ServerConfig struct {
	ListenAddress string
}

// DevMailConfig represents the configuration for the dev SMTP sink
type DevMailConfig struct {
	Enabled       bool
	ListenAddress string
	MaxMessages   int
}

// GetAnalyzer returns the analyzer configuration
func (c *Config) GetAnalyzer() AnalyzerConfig {
	return AnalyzerConfig{
		DetectThreshold: c.GetFloat64("analyzer.detect_threshold"),
		CreateThreshold: c.GetFloat64("analyzer.create_threshold"),
		DateWeight:      c.GetFloat64("analyzer.weights.date"),
		TimeWeight:      c.GetFloat64("analyzer.weights.time"),
		KeywordWeight:   c.GetFloat64("analyzer.weights.keyword"),
		LocationWeight:  c.GetFloat64("analyzer.weights.location"),
		MaxSnippetSize:  c.GetInt("analyzer.max_snippet_size"),
	}
}

// GetGmail returns the Gmail source configuration
func (c *Config) GetGmail() GmailConfig {
	return GmailConfig{
		CredentialsFile: c.GetString("gmail.credentials_file"),
		TokenFile:       c.GetString("gmail.token_file"),
		Query:           c.GetString("gmail.query"),
	}
}

// GetCalendar returns the calendar writer configuration
func (c *Config) GetCalendar() CalendarConfig {
	return CalendarConfig{
		Type:       c.GetString("calendar.type"),
		CalendarID: c.GetString("calendar.id"),
	}
}

// GetServer returns the dashboard server configuration
func (c *Config) GetServer() ServerConfig {
	return ServerConfig{
		ListenAddress: c.GetString("server.listen_address"),
	}
}

// GetDevMail returns the dev SMTP sink configuration
func (c *Config) GetDevMail() DevMailConfig {
	return DevMailConfig{
		Enabled:       c.GetBool("devmail.enabled"),
		ListenAddress: c.GetString("devmail.listen_address"),
		MaxMessages:   c.GetInt("devmail.max_messages"),
	}
}
