package main

import (
	_ "smartcontract/docs"
	"smartcontract/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Smart Contract Platform API
// @version         1.0
// @description     Document platform (quotations + contracts) with AI generation and review.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@smart-contract.ai

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
