// Package builder provides deterministic graph constructors: K_n (K4 is the
// graphic realization of a small regular matroid), C_n (outer rim of a
// wheel), and W_n = C_(n-1) + "Center" (the wheel shape of a W3 minor),
// trimmed from lvlath/builder's much larger constructor catalogue down to
// three shapes. Only this package's own tests call them; the decomposition
// scenario tests build their matrices directly.
package builder
