/*Package tluplot draws TLUSTY models for visual comparison. A Comparison holds
one figure per selected quantity (temperature, electron density, mass density);
each model file added contributes one labeled curve, against column mass in a
logarithmic axis, to every figure. The figures are written with gonum/plot.
*/
package tluplot
