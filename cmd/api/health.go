package main

import (
	"net/http"
)

type HealthResponse struct {
	Status   string            `json:"status"`
	Env      string            `json:"env"`
	Version  string            `json:"version"`
	Services map[string]string `json:"services"`
}

// healthCheckHandler godoc
//
//	@Summary		Healthcheck
//	@Description	Reports service status and downstream configuration
//	@Tags			ops
//	@Produce		json
//	@Success		200	{object}	HealthResponse
//	@Router			/health [get]
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	services := map[string]string{
		"sheets":      "configured",
		"apps_script": "configured",
		"webhook":     "disabled",
	}

	if app.config.appsScript.url == "" {
		services["apps_script"] = "disabled"
	}
	if app.config.webhook.URL != "" {
		services["webhook"] = "configured"
	}

	data := HealthResponse{
		Status:   "ok",
		Env:      app.config.env,
		Version:  version,
		Services: services,
	}

	if err := app.jsonResponse(w, http.StatusOK, data); err != nil {
		app.internalServerError(w, r, err)
	}
}
