// @title           petlink API
// @version         1.0
// @description     Lost-and-found pet reports, shelters and adoption marketplace.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /

package main

import "petlink_backend/internal/app"

func main() {
	app.Run()
}
