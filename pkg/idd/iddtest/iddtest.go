/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

// Package iddtest provides schema and data file fixtures for tests.
package iddtest

import "strings"

// Schema version of IDD fixture
const Version = "8.0.0"

// Schema fixture. Subset of EnergyPlus 8.0 data dictionary
const IDD = `!IDD_Version 8.0.0
!IDD_BUILD 1c4d3c7f7d
! subset of Energy+.idd used by tests

\group Simulation Parameters

Version,
      \memo Specifies the EnergyPlus version of the IDF file.
      \unique-object
      \format singleLine
  A1 ; \field Version Identifier
      \required-field
      \default 8.0

Lead Input;

Building,
       \memo Describes parameters that are used during the simulation
       \memo of the building.
       \unique-object
       \required-object
       \min-fields 8
  A1 , \field Name
       \retaindefault
       \required-field
       \default NONE
  N1 , \field North Axis
       \note degrees from true North
       \units deg
       \type real
       \default 0.0
  A2 , \field Terrain
       \type choice
       \key Country
       \key Suburbs
       \key City
       \key Ocean
       \key Urban
       \default Suburbs
  N2 , \field Loads Convergence Tolerance Value
       \type real
       \minimum> 0.0
       \maximum .5
       \default .04
  N3 , \field Temperature Convergence Tolerance Value
       \units deltaC
       \type real
       \default .4
  A3 , \field Solar Distribution
       \type choice
       \key MinimalShadowing
       \key FullExterior
       \key FullInteriorAndExterior
       \default FullExterior
  N4 , \field Maximum Number of Warmup Days
       \type integer
       \default 25
  N5 ; \field Minimum Number of Warmup Days
       \type integer
       \default 6

\group Thermal Zones and Surfaces

Zone,
  \memo Defines a thermal zone of the building.
  A1 , \field Name
       \required-field
       \type alpha
       \reference ZoneNames
       \reference OutFaceEnvNames
       \reference ZoneAndZoneListNames
       \reference AirflowNetworkNodeAndZoneNames
  N1 , \field Direction of Relative North
       \units deg
       \type real
       \default 0
  N2 , \field X Origin
       \units m
       \type real
       \default 0
  N3 , \field Y Origin
       \units m
       \type real
       \default 0
  N4 , \field Z Origin
       \units m
       \type real
       \default 0
  N5 , \field Type
       \type integer
       \maximum 1
       \minimum 1
       \default 1
  N6 , \field Multiplier
       \type integer
       \minimum 1
       \default 1
  N7 , \field Ceiling Height
       \note If this field is 0.0, negative or autocalculate, then the average height
       \note of the zone is automatically calculated and used in subsequent calculations.
       \units m
       \type real
       \autocalculatable
       \default autocalculate
  N8 , \field Volume
       \units m3
       \type real
       \autocalculatable
       \default autocalculate
  N9 , \field Floor Area
       \units m2
       \type real
       \autocalculatable
       \default autocalculate
  A2 , \field Zone Inside Convection Algorithm
       \type choice
       \key Simple
       \key TARP
       \key CeilingDiffuser
       \key AdaptiveConvectionAlgorithm
       \key TrombeWall
  A3 , \field Zone Outside Convection Algorithm
       \type choice
       \key SimpleCombined
       \key TARP
       \key DOE-2
       \key MoWiTT
       \key AdaptiveConvectionAlgorithm
  A4 ; \field Part of Total Floor Area
       \type choice
       \key Yes
       \key No
       \default Yes

ZoneList,
       \memo Defines a list of thermal zones which can be referenced as a group.
       \extensible:1 Just duplicate last field and comments (changing numbering, please)
  A1 , \field Name
       \required-field
       \reference ZoneListNames
       \reference ZoneAndZoneListNames
  A2 , \field Zone 1 Name
       \begin-extensible
       \required-field
       \type object-list
       \object-list ZoneNames
  A3 , \field Zone 2 Name
       \type object-list
       \object-list ZoneNames
  A4 ; \field Zone 3 Name
       \type object-list
       \object-list ZoneNames

BuildingSurface:Detailed,
       \memo Allows for detailed entry of building heat transfer surfaces.
       \extensible:3 -- duplicate last set of x,y,z coordinates (last 3 fields), remembering to remove ; from "inner" fields.
       \format vertices
       \min-fields 19
  A1 , \field Name
       \required-field
       \type alpha
       \reference SurfaceNames
       \reference SurfAndSubSurfNames
  A2 , \field Surface Type
       \required-field
       \type choice
       \key Floor
       \key Wall
       \key Ceiling
       \key Roof
  A3 , \field Construction Name
       \required-field
       \type object-list
       \object-list ConstructionNames
  A4 , \field Zone Name
       \required-field
       \type object-list
       \object-list ZoneNames
  A5 , \field Outside Boundary Condition
       \required-field
       \type choice
       \key Adiabatic
       \key Surface
       \key Zone
       \key Outdoors
       \key Ground
  A6 , \field Outside Boundary Condition Object
       \type object-list
       \object-list OutFaceEnvNames
  A7 , \field Sun Exposure
       \type choice
       \key SunExposed
       \key NoSun
       \default SunExposed
  A8 , \field Wind Exposure
       \type choice
       \key WindExposed
       \key NoWind
       \default WindExposed
  N1 , \field View Factor to Ground
       \type real
       \minimum 0.0
       \maximum 1.0
       \autocalculatable
       \default autocalculate
  N2 , \field Number of Vertices
       \minimum 3
       \autocalculatable
       \default autocalculate
  N3 , \field Vertex 1 X-coordinate
       \begin-extensible
       \required-field
       \units m
       \type real
  N4 , \field Vertex 1 Y-coordinate
       \required-field
       \units m
       \type real
  N5 , \field Vertex 1 Z-coordinate
       \required-field
       \units m
       \type real
  N6 , \field Vertex 2 X-coordinate
       \required-field
       \units m
       \type real
  N7 , \field Vertex 2 Y-coordinate
       \required-field
       \units m
       \type real
  N8 , \field Vertex 2 Z-coordinate
       \required-field
       \units m
       \type real
  N9 , \field Vertex 3 X-coordinate
       \required-field
       \units m
       \type real
  N10, \field Vertex 3 Y-coordinate
       \required-field
       \units m
       \type real
  N11, \field Vertex 3 Z-coordinate
       \required-field
       \units m
       \type real
  N12, \field Vertex 4 X-coordinate
       \units m
       \type real
  N13, \field Vertex 4 Y-coordinate
       \units m
       \type real
  N14; \field Vertex 4 Z-coordinate
       \units m
       \type real

\group Surface Construction Elements

Material,
       \memo Regular materials described with full set of thermal properties
       \min-fields 6
  A1 , \field Name
       \required-field
       \type alpha
       \reference MaterialName
  A2 , \field Roughness
       \required-field
       \type choice
       \key VeryRough
       \key Rough
       \key MediumRough
       \key MediumSmooth
       \key Smooth
       \key VerySmooth
  N1 , \field Thickness
       \required-field
       \units m
       \type real
  N2 , \field Conductivity
       \required-field
       \units W/m-K
       \type real
  N3 , \field Density
       \required-field
       \units kg/m3
       \type real
  N4 , \field Specific Heat
       \required-field
       \units J/kg-K
       \type real
  N5 , \field Thermal Absorptance
       \type real
       \default .9
  N6 , \field Solar Absorptance
       \type real
       \default .7
  N7 ; \field Visible Absorptance
       \type real
       \default .7

Material:NoMass,
       \memo Regular materials properties described whose principal description is R (Thermal Resistance)
       \min-fields 3
  A1 , \field Name
       \required-field
       \type alpha
       \reference MaterialName
  A2 , \field Roughness
       \required-field
       \type choice
       \key VeryRough
       \key Rough
       \key MediumRough
       \key MediumSmooth
       \key Smooth
       \key VerySmooth
  N1 , \field Thermal Resistance
       \required-field
       \units m2-K/W
       \type real
  N2 , \field Thermal Absorptance
       \type real
       \default .9
  N3 , \field Solar Absorptance
       \type real
       \default .7
  N4 ; \field Visible Absorptance
       \type real
       \default .7

Construction,
       \memo Start with outside layer and work your way to the inside layer
       \min-fields 2
  A1 , \field Name
       \required-field
       \type alpha
       \reference ConstructionNames
  A2 , \field Outside Layer
       \required-field
       \type object-list
       \object-list MaterialName
  A3 , \field Layer 2
       \type object-list
       \object-list MaterialName
  A4 , \field Layer 3
       \type object-list
       \object-list MaterialName
  A5 , \field Layer 4
       \type object-list
       \object-list MaterialName
  A6 ; \field Layer 5
       \type object-list
       \object-list MaterialName

\group Schedules

Schedule:Compact,
      \memo Irregular object.  Does not follow the usual definition for fields.
      \extensible:1 - repeat last field, remembering to remove ; from "inner" fields.
      \min-fields 5
  A1 , \field Name
       \required-field
       \type alpha
       \reference ScheduleNames
  A2 , \field Schedule Type Limits Name
       \type object-list
       \object-list ScheduleTypeLimitsNames
  A3 , \field Field 1
       \begin-extensible
  A4 ,
  A5 ,
  A6 ;

\group Fluid Properties

FluidProperties:Name,
       \memo potential fluid name/type in the input file
  A1 , \field Fluid Name
       \type alpha
       \reference FluidNames
       \reference FluidAndGlycolNames
  A2 ; \field Fluid Type
       \type choice
       \key Refrigerant
       \key Glycol

\group Performance Tables

Table:MultiVariableLookup,
       \memo Input tables of data for multi-variable lookup.
  A1 , \field Name
       \required-field
       \type alpha
       \reference MultivariateFunctions
  A2 , \field Interpolation Method
       \type choice
       \key LagrangeInterpolationLinearExtrapolation
       \key EvaluateCurveToLimits
  N1 , \field Number of Independent Variables
       \type integer
  N2 , \field Field 1 Determined by the Number of Independent Variables
  N3 ,
  N4 ;

\group Electric Load Center-Generator Specifications

ElectricLoadCenter:Transformer,
       \memo a list of meters that can be reported are available after a run
  A1 , \field Name
       \required-field
       \type alpha
       \reference TransformerNames
  A2 ; \field Availability Schedule Name
       \type object-list
       \object-list ScheduleNames

ElectricLoadCenter:Distribution,
       \memo a list of meters that can be reported are available after a run
  A1 , \field Name
       \required-field
       \type alpha
  A2 , \field Generator List Name
       \type object-list
       \object-list GeneratorLists
  A3 , \field Generator Operation Scheme Type
       \type choice
       \key Baseload
       \key DemandLimit
  N1 , \field Demand Limit Scheme Purchased Electric Demand Limit
       \units W
       \type real
  A4 , \field Track Schedule Name Scheme Schedule Name
       \type object-list
       \object-list ScheduleNames
  A5 , \field Track Meter Scheme Meter Name
       \type external-list
       \external-list autoRDDmeter
  A6 , \field Electrical Buss Type
       \type choice
       \key AlternatingCurrent
       \key DirectCurrentWithInverter
       \default AlternatingCurrent
  A7 , \field Inverter Object Name
       \type alpha
  A8 , \field Electrical Storage Object Name
       \type alpha
  A9 ; \field Transformer Object Name
       \type object-list
       \object-list TransformerNames
`

// Data file fixture for IDD fixture
const IDF = `!- Darwin Line endings

Version,8.0;

Building,
    Building,                !- Name
    30.,                     !- North Axis {deg}
    City,                    !- Terrain
    0.04,                    !- Loads Convergence Tolerance Value
    0.4,                     !- Temperature Convergence Tolerance Value {deltaC}
    FullExterior,            !- Solar Distribution
    25,                      !- Maximum Number of Warmup Days
    6;                       !- Minimum Number of Warmup Days

Zone,
    Main Zone,               !- Name
    0,                       !- Direction of Relative North {deg}
    0,                       !- X Origin {m}
    0,                       !- Y Origin {m}
    0,                       !- Z Origin {m}
    1,                       !- Type
    1,                       !- Multiplier
    autocalculate,           !- Ceiling Height {m}
    autocalculate;           !- Volume {m3}

ZoneList,
    All Zones,               !- Name
    Main Zone;               !- Zone 1 Name

BuildingSurface:Detailed,
    Wall 1,                  !- Name
    Wall,                    !- Surface Type
    Interior Wall,           !- Construction Name
    Main Zone,               !- Zone Name
    Outdoors,                !- Outside Boundary Condition
    ,                        !- Outside Boundary Condition Object
    SunExposed,              !- Sun Exposure
    WindExposed,             !- Wind Exposure
    0.5,                     !- View Factor to Ground
    5,                       !- Number of Vertices
    0,0,3,                   !- X,Y,Z ==> Vertex 1 {m}
    0,0,0,                   !- X,Y,Z ==> Vertex 2 {m}
    10,0,0,                  !- X,Y,Z ==> Vertex 3 {m}
    10,0,3,                  !- X,Y,Z ==> Vertex 4 {m}
    5,0,4;                   !- X,Y,Z ==> Vertex 5 {m}

Material,
    G01a 19mm gypsum board,  !- Name
    MediumSmooth,            !- Roughness
    0.019,                   !- Thickness {m}
    0.16,                    !- Conductivity {W/m-K}
    800,                     !- Density {kg/m3}
    1090;                    !- Specific Heat {J/kg-K}

Material,
    M11 100mm lightweight concrete,  !- Name
    MediumRough,             !- Roughness
    0.1016,                  !- Thickness {m}
    0.53,                    !- Conductivity {W/m-K}
    1280,                    !- Density {kg/m3}
    840,                     !- Specific Heat {J/kg-K}
    0.9,                     !- Thermal Absorptance
    0.5,                     !- Solar Absorptance
    0.5;                     !- Visible Absorptance

Material:NoMass,
    F04 Wall air space resistance,  !- Name
    MediumRough,             !- Roughness
    0.15;                    !- Thermal Resistance {m2-K/W}

Construction,
    Interior Wall,           !- Name
    G01a 19mm gypsum board,  !- Outside Layer
    F04 Wall air space resistance,  !- Layer 2
    G01a 19mm gypsum board;  !- Layer 3

Construction,
    Exterior Wall,           !- Name
    M11 100mm lightweight concrete,  !- Outside Layer
    F04 Wall air space resistance,  !- Layer 2
    G01a 19mm gypsum board;  !- Layer 3

Schedule:Compact,
    Always On,               !- Name
    Fraction,                !- Schedule Type Limits Name
    Through: 12/31,          !- Field 1
    For: AllDays,            !- Field 2
    Until: 24:00,            !- Field 3
    1;                       !- Field 4
`

// Returns schema fixture with version line replaced by specified version
func IDDVersion(version string) string {
	return strings.Replace(IDD, "!IDD_Version "+Version, "!IDD_Version "+version, 1)
}
