// Package line models emission lines and their diagnostic ratios.
//
// A [Line] bundles one or more constituent transitions (a doublet is one
// Line with two constituents) with their wavelengths, luminosities and
// continuum densities. A [Collection] indexes lines by id and evaluates
// the ratios and diagnostic diagrams of the built-in catalogue, such as
// the Balmer decrement or the BPT-NII diagram.
//
// Line ids follow the cloudy convention "<element> <stage> <lam>A", for
// example "O 3 5008.24A". Composite ids join constituents with ",".
package line
