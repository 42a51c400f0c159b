// Package particle computes form factor amplitudes of homogeneous and layered
// spheres, their volumes, the number of chains grafted to their surface and
// the propagators that carry phase between a grafting point and the centre.
//
// Lengths are in Å, scattering length densities in 1e-6 Å^-2 and grafting
// densities in chains per nm².
package particle
