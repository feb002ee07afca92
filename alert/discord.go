package alert

import (
	"bytes"
	"encoding/json"
	"net/http"
)

func SendDiscord(webhookURL, msg string) error {
	if webhookURL == "" {
		return nil
	}

	body, err := json.Marshal(map[string]string{"content": msg})
	if err != nil {
		return err
	}

	resp, err := http.Post(webhookURL, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
