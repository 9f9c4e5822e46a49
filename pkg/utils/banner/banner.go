package banner

import (
	"fmt"
	"io"

	"github.com/WietRob/ai-router-system/pkg/domain/model"
	"github.com/fatih/color"
)

// Print writes the startup banner
func Print(w io.Writer) {
	title := color.New(color.FgCyan, color.Bold)
	title.Fprintln(w, "AI Router Bootstrap")
	fmt.Fprintln(w, "Sets up the local AI routing toolkit (Ollama + Claude API)")
	fmt.Fprintln(w)
}

// PrintInstructions writes the follow-up steps after a successful setup
func PrintInstructions(w io.Writer, manifest *model.Manifest) {
	heading := color.New(color.FgGreen, color.Bold)
	cmd := color.New(color.FgYellow)

	heading.Fprintln(w, "Setup complete. Next steps:")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "1. Get a Claude API key from https://console.anthropic.com")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "2. Register the key with the router:")
	cmd.Fprintf(w, "   python3 %s/smart_router.py setup <your-api-key>\n", manifest.ConfigDir)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "3. Try a prompt:")
	cmd.Fprintf(w, "   python3 %s/smart_router.py prompt 'Hello world'\n", manifest.ConfigDir)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "4. Start the Cursor integration server in the background:")
	cmd.Fprintf(w, "   python3 %s/cursor_integration.py &\n", manifest.ConfigDir)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "5. Point Cursor's AI provider at:")
	cmd.Fprintln(w, "   http://localhost:8000/v1/chat/completions")
}
