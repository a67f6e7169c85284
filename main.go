package main

import "github.com/trajlab/annotator-api/cmd"

// @title           Trajectory Annotation API
// @version         1.0.0
// @description     Persists temporal subtask annotations for robot-trajectory videos and tracks per-video labeling progress
// @contact.name    API Support
// @contact.url     https://github.com/trajlab/annotator-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
