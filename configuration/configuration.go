package configuration

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup.
type Config struct {
	ListenAddr       string
	DoctorsFile      string
	AppointmentsFile string
	RedisAddr        string
	SMTPHost         string
	SMTPPort         int
	SMTPEmail        string
	SMTPPassword     string
}

// LoadConfig reads .env (if present) and the process environment.
func LoadConfig() Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file found, reading configuration from environment")
	}

	return Config{
		ListenAddr:       getenv("LISTEN_ADDR", ":8080"),
		DoctorsFile:      getenv("DOCTORS_FILE", "doctors.json"),
		AppointmentsFile: getenv("APPOINTMENTS_FILE", "appointments.csv"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		SMTPHost:         getenv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:         getenvInt("SMTP_PORT", 587),
		SMTPEmail:        os.Getenv("Email"),
		SMTPPassword:     os.Getenv("Password"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("ignoring invalid %s value %q", key, v)
	}
	return fallback
}
