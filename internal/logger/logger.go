package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/spf13/viper"
)

var (
	mu  sync.Mutex
	out io.Writer = os.Stdout
)

// SetOutput redirige todos los mensajes (los tests lo usan para silenciar la salida)
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

func printf(prefix, format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, prefix+format+"\n", args...)
}

// Debug prints only if verbose mode is enabled
func Debug(format string, args ...interface{}) {
	if viper.GetBool("verbose") {
		printf("[DEBUG] Applications deleter: ", format, args...)
	}
}

// Info always prints
func Info(format string, args ...interface{}) {
	printf("", format, args...)
}

// Warn always prints with a warning icon
func Warn(format string, args ...interface{}) {
	printf("⚠️  ", format, args...)
}

// Error always prints
func Error(format string, args ...interface{}) {
	printf("❌ ", format, args...)
}
