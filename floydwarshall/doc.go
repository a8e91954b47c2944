// Package floydwarshall provides the dense all-pairs shortest-path
// kernel, grounded on the triple-nested k-i-j relaxation order used
// throughout this module's matrix operations.
package floydwarshall
