package main

// @title Salary Visualization API
// @version 1.0
// @description Cross-filtered salary aggregates for bar, choropleth, scatter and parallel-coordinates charts.
// @host localhost:8080
// @BasePath /
func main() {
	execute()
}
