package assemble

// Fixed scaffolding of the generated units. The generated files are consumed
// by the host solver's build, so the include set, linkage markers and
// function signatures are part of the wire format and must not drift.

const fileHeader = `/*----------------------------------------------------------------------------*/
/*
  This file is generated by Code_Saturne, a general-purpose CFD tool.
*/
/*----------------------------------------------------------------------------*/

#include "cs_defs.h"

/*----------------------------------------------------------------------------
 * Standard C library headers
 *----------------------------------------------------------------------------*/

#include <assert.h>
#include <math.h>

#if defined(HAVE_MPI)
#include <mpi.h>
#endif

/*----------------------------------------------------------------------------
 *  Local headers
 *----------------------------------------------------------------------------*/

#include "cs_headers.h"
`

const neptuneHeader = `#include "nc_phases.h"

`

const declsHeader = `/*----------------------------------------------------------------------------*/

BEGIN_C_DECLS

/*----------------------------------------------------------------------------*/

`

const fileFooter = `}

/*----------------------------------------------------------------------------*/

END_C_DECLS

`

const volumeFunctionHeader = `void
cs_meg_volume_function(cs_field_t              *f,
                       const cs_volume_zone_t  *vz)
{
`

const boundaryFunctionHeader = `cs_real_t *
cs_meg_boundary_function(const char               *field_name,
                         const char               *condition,
                         const cs_boundary_zone_t *bz)
{
  cs_real_t *new_vals = NULL;

`

// VolumeFileName is the generated volume unit's file name.
const VolumeFileName = "cs_meg_volume_function.c"

// BoundaryFileName is the generated boundary unit's file name.
const BoundaryFileName = "cs_meg_boundary_function.c"
