// Package messages holds every user-facing bot text. English is the
// default; Russian translations are the texts the bot shipped with.
package messages

import "github.com/iamvkosarev/role-distributor-bot/pkg/local"

var (
	Welcome = local.NewSet(
		"Hi, %s! I am a bot for managing roles in this group.",
		local.NewTrans(local.Rus, "Привет, %s! Я бот для управления ролями в группе."),
	)
	Help = local.NewSet(
		"I am a bot for managing roles in this group.\n\n"+
			"Available commands:\n"+
			"/setrole - Assign a role to users.\n"+
			"/getrole - Show a user's roles.\n"+
			"/deleterole - Remove a role from users.\n"+
			"/removerole - Delete a role entirely.\n"+
			"/assignrole - Assign a role to yourself.\n"+
			"/roles - Show all roles and members.\n"+
			"/tagrole - Mention every member of a role.\n"+
			"/help - Show this message.\n\n"+
			"You can also write `@<role>` in a message to mention every member of that role.\n"+
			"For example: `@dev Hi, team!`",
		local.NewTrans(local.Rus, "Я бот для управления ролями в группе.\n\n"+
			"Доступные команды:\n"+
			"/setrole - Назначить роль пользователю.\n"+
			"/getrole - Получить роли пользователя.\n"+
			"/deleterole - Удалить роль у пользователя.\n"+
			"/removerole - Удалить роль из системы.\n"+
			"/assignrole - Самостоятельно добавить себе роль.\n"+
			"/roles - Показать все роли и участников.\n"+
			"/tagrole - Упомянуть участников роли.\n"+
			"/help - Показать это сообщение.\n\n"+
			"Вы также можете использовать `@<роль>` в вашем сообщении, чтобы упомянуть всех участников этой роли.\n"+
			"Например: `@dev Привет, команда!`"),
	)

	RosterHeader = local.NewSet(
		"Roles and members:\n",
		local.NewTrans(local.Rus, "Список ролей и участников:\n"),
	)
	RosterEmpty = local.NewSet(
		"No roles assigned yet.",
		local.NewTrans(local.Rus, "Пока нет назначенных ролей."),
	)
	RosterFailed = local.NewSet(
		"Failed to fetch the role list.",
		local.NewTrans(local.Rus, "Произошла ошибка при получении списка ролей."),
	)

	AdminsOnly = local.NewSet(
		"Only an administrator can manage roles.",
		local.NewTrans(local.Rus, "Только администратор может назначать роли."),
	)
	AdminCheckFailed = local.NewSet(
		"Could not verify your permissions. Try again later.",
		local.NewTrans(local.Rus, "Не удалось проверить ваши права. Попробуйте позже."),
	)

	ChooseOption = local.NewSet(
		"Choose an option:",
		local.NewTrans(local.Rus, "Выберите опцию:"),
	)
	OptionExistingRole = local.NewSet(
		"Pick an existing role",
		local.NewTrans(local.Rus, "Выбрать существующую роль"),
	)
	OptionNewRole = local.NewSet(
		"Create a new role",
		local.NewTrans(local.Rus, "Создать новую роль"),
	)
	ButtonCancel = local.NewSet(
		"Cancel",
		local.NewTrans(local.Rus, "Отмена"),
	)
	ButtonBack = local.NewSet(
		"Back",
		local.NewTrans(local.Rus, "Назад"),
	)
	ButtonYes = local.NewSet(
		"Yes",
		local.NewTrans(local.Rus, "Да"),
	)
	ButtonNo = local.NewSet(
		"No",
		local.NewTrans(local.Rus, "Нет"),
	)

	ChooseRole = local.NewSet(
		"Choose a role:",
		local.NewTrans(local.Rus, "Выберите роль:"),
	)
	NoRolesAvailable = local.NewSet(
		"No roles available yet.",
		local.NewTrans(local.Rus, "Пока нет доступных ролей."),
	)
	EnterNewRoleName = local.NewSet(
		"Please enter the name of the new role:",
		local.NewTrans(local.Rus, "Пожалуйста, введите название новой роли:"),
	)
	EmptyRoleName = local.NewSet(
		"The role name cannot be empty. Try again or press /cancel to abort.",
		local.NewTrans(local.Rus, "Название роли не может быть пустым. Попробуйте снова или нажмите /cancel для отмены."),
	)
	RoleChosenEnterUsers = local.NewSet(
		"You picked the role \"%s\". Now enter the @username of each user to assign it to, separated by spaces:",
		local.NewTrans(local.Rus, "Вы выбрали роль \"%s\". Теперь введите @username пользователей через пробел для назначения роли:"),
	)
	RoleCreatedEnterUsers = local.NewSet(
		"The role \"%s\" is created. Now enter the @username of each user to assign it to, separated by spaces:",
		local.NewTrans(local.Rus, "Роль \"%s\" создана. Теперь введите @username пользователей через пробел для назначения роли:"),
	)
	EnterUsernamesReprompt = local.NewSet(
		"Please list the @username of each user separated by spaces, or press /cancel to abort.",
		local.NewTrans(local.Rus, "Пожалуйста, укажите @username пользователей через пробел или нажмите /cancel для отмены."),
	)
	RoleAssignedTo = local.NewSet(
		"The role \"%s\" is assigned to: %s.\n",
		local.NewTrans(local.Rus, "Роль \"%s\" назначена пользователям: %s.\n"),
	)
	RoleAssignFailedFor = local.NewSet(
		"Could not assign the role to: %s.\n",
		local.NewTrans(local.Rus, "Не удалось назначить роль пользователям: %s.\n"),
	)

	EnterUsernameForRoles = local.NewSet(
		"Please enter the @username of the user whose roles you want to see:",
		local.NewTrans(local.Rus, "Пожалуйста, введите @username пользователя для получения его ролей:"),
	)
	UserRoles = local.NewSet(
		"Roles of @%s: %s",
		local.NewTrans(local.Rus, "Роли пользователя @%s: %s"),
	)
	UserHasNoRoles = local.NewSet(
		"@%s has no assigned roles.",
		local.NewTrans(local.Rus, "У пользователя @%s нет назначенных ролей."),
	)

	EnterUsernamesToStrip = local.NewSet(
		"Please enter the @username of each user to remove the role from, separated by spaces:",
		local.NewTrans(local.Rus, "Пожалуйста, введите @username пользователей через пробел, у которых вы хотите удалить роль:"),
	)
	ChooseRoleToStrip = local.NewSet(
		"Choose the role to remove from the listed users:",
		local.NewTrans(local.Rus, "Выберите роль для удаления у указанных пользователей:"),
	)
	RoleRemovedFrom = local.NewSet(
		"The role \"%s\" is removed from: %s.\n",
		local.NewTrans(local.Rus, "Роль \"%s\" удалена у пользователей: %s.\n"),
	)
	RoleRemoveFailedFor = local.NewSet(
		"Could not remove the role from: %s.\n",
		local.NewTrans(local.Rus, "Не удалось удалить роль у пользователей: %s.\n"),
	)

	ChooseRoleToDelete = local.NewSet(
		"Choose the role to delete:",
		local.NewTrans(local.Rus, "Выберите роль для удаления:"),
	)
	NoRolesToDelete = local.NewSet(
		"No roles available to delete yet.",
		local.NewTrans(local.Rus, "Пока нет доступных ролей для удаления."),
	)
	RoleDeleted = local.NewSet(
		"The role \"%s\" is deleted.",
		local.NewTrans(local.Rus, "Роль \"%s\" успешно удалена."),
	)

	ChooseRoleForSelf = local.NewSet(
		"Choose the role you want to assign to yourself:",
		local.NewTrans(local.Rus, "Выберите роль, которую хотите назначить себе:"),
	)
	ConfirmSelfAssign = local.NewSet(
		"Are you sure you want to assign the role \"%s\" to yourself?",
		local.NewTrans(local.Rus, "Вы уверены, что хотите назначить себе роль \"%s\"?"),
	)
	SelfAssigned = local.NewSet(
		"You assigned the role \"%s\" to yourself.",
		local.NewTrans(local.Rus, "Вы успешно назначили себе роль \"%s\"."),
	)
	SelfAssignCancelled = local.NewSet(
		"Role assignment cancelled.",
		local.NewTrans(local.Rus, "Операция назначение роли отменена."),
	)
	NoUsername = local.NewSet(
		"Could not determine your username.",
		local.NewTrans(local.Rus, "Не удалось получить ваше имя пользователя."),
	)

	ChooseRoleToTag = local.NewSet(
		"Choose the role to mention:",
		local.NewTrans(local.Rus, "Выберите роль для тегирования:"),
	)
	RoleMembers = local.NewSet(
		"Members of the role \"%s\":\n%s",
		local.NewTrans(local.Rus, "Участники роли \"%s\":\n%s"),
	)
	RoleHasNoMembers = local.NewSet(
		"The role \"%s\" has no members.",
		local.NewTrans(local.Rus, "Нет участников с ролью \"%s\"."),
	)

	Cancelled = local.NewSet(
		"Operation cancelled.",
		local.NewTrans(local.Rus, "Операция отменена."),
	)
	UnknownCommand = local.NewSet(
		"Unknown command.",
		local.NewTrans(local.Rus, "Неизвестная команда."),
	)
	GenericError = local.NewSet(
		"Something went wrong. Try again later.",
		local.NewTrans(local.Rus, "Произошла ошибка. Попробуйте позже."),
	)
)
