// Package antpath is a small Ant Colony Optimization toolkit: a colony of
// simulated ants searches for a short closed tour over a complete graph,
// guided by a shared pheromone table that short routes reinforce.
//
// What is inside?
//
//	matrix/       dense, bounds-checked float64 matrices + validators
//	aco/          distances, pheromone, ants, colony iteration, route tracker
//	config/       viper-backed run configuration (file, env, defaults)
//	report/       text / YAML / JSON rendering of iterations and summaries
//	cmd/antpath/  cobra CLI: run, routes, init-config, version
//
// Guarantees
//
//   - Library packages never log and never panic on user input; errors are
//     sentinels checked with errors.Is.
//   - Deterministic: a fixed seed reproduces every route and table, at any
//     worker count.
//   - Ants run concurrently on a bounded errgroup; the shared table has a
//     single writer.
//
// Quick start:
//
//	dist, _ := aco.NewDistances(aco.ExampleDistances())
//	col, _ := aco.NewColony(dist, aco.WithSeed(7))
//	tr, _ := col.Run()
//	fmt.Println(tr.Ranked()[0])
//
// Or from the shell:
//
//	antpath run --seed 7 --quiet
//	antpath run --config configs/four_nodes.yaml --format yaml
//	antpath routes
package antpath
