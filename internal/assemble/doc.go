// Package assemble builds typed entities from loosely typed source records.
//
// Each factory maps source keys to entity fields and coerces values with
// package convert:
//
//   - Planet: suns, moons, diameter -> diameter_km and population to int;
//     orbital_period -> orbital_period_days to float; gravity ->
//     gravity_std; climate and terrain split on ", "
//   - Person: height -> height_m and mass -> mass_kg to float;
//     force_sensitive to bool; homeworld supplied by the caller
//   - Droid: height -> height_m, mass -> mass_kg; equipment split on "|"
//   - Starship: length -> length_m, cargo_capacity -> cargo_capacity_kg and
//     hyperdrive_rating to float; max_atmosphering_speed and MGLT to int;
//     armament split on ","; crew and passengers kept as capacities
//   - Episode: season and episode numbers to int; production code and US
//     viewers to float; writers split on ", "
//
// Absent fields become nil. A present value that fails to convert also
// becomes nil and is logged as a warning; it never fails the record. Only a
// missing required field (name, url, model) is an error.
package assemble
