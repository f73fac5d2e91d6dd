// Package scheduling contains the interview scheduling engine: the
// constraint builder, the anytime backtracking solver, the five
// competing strategies, the option evaluator and the parallel engine
// that runs them.
package scheduling
