package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/episurv/reportcase-api/cmd/app"
	_ "github.com/episurv/reportcase-api/docs"
)

// @title           Reportcase API
// @version         1.0
// @description     Suivi des cas de maladies reportés par localisation.
//
// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html
//
// @BasePath  /api
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
//
// @externalDocs.description  OpenAPI
// @externalDocs.url          https://swagger.io/resources/open-api/
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
