package logger

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dagrd-medellin/emergency-pipeline/internal/config"
)

// New crea el logger JSON del servicio a partir de la configuración
func New(cfg *config.Config) *logrus.Logger {
	log := logrus.New()

	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})

	log.SetOutput(os.Stdout)

	// Nivel de log
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel // Nivel por defecto si el configurado es inválido
	}
	log.SetLevel(level)
	return log
}
